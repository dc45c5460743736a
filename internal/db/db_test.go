package db

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/model"
)

func TestOpen_RecordNotFoundIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	gormDB, err := Open(config.DriverSQLite, filepath.Join(t.TempDir(), "blog.db"), zerolog.New(&buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gormDB) })
	require.NoError(t, AutoMigrate(gormDB))
	buf.Reset()

	var user model.User
	err = gormDB.Where("email = ?", "missing@x.com").First(&user).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len(), buf.String())
}

func TestGormLogger_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(zerolog.New(&buf))

	l.Error(context.Background(), "query failed: %v", errors.New("boom"))
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "query failed: boom")

	buf.Reset()
	l.Info(context.Background(), "chatty")
	assert.Zero(t, buf.Len())
}

func TestEmailCollationDDL(t *testing.T) {
	assert.Contains(t, emailCollationDDL(config.DriverMySQL), "COLLATE utf8mb4_bin")
	assert.Contains(t, emailCollationDDL(config.DriverMySQL), "ALTER TABLE users MODIFY email")
	assert.Empty(t, emailCollationDDL(config.DriverPostgres))
	assert.Empty(t, emailCollationDDL(config.DriverSQLite))
}
