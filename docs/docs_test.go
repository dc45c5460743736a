package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Info    map[string]any            `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Blog API", doc.Info["title"])

	routes := map[string][]string{
		"/users/register": {"post"},
		"/users/login":    {"post"},
		"/users/profile":  {"get"},
		"/users":          {"get", "post"},
		"/users/{id}":     {"get"},
		"/posts":          {"get", "post"},
		"/posts/{id}":     {"get"},
		"/comments":       {"get", "post"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, path)
		}
	}
}
