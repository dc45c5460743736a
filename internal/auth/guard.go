package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "blogapi/internal/errors"
)

const bearerScheme = "Bearer"

// Guard authenticates requests to protected routes.
type Guard struct {
	tokens TokenService
}

// NewGuard creates a guard backed by the given token service.
func NewGuard(tokens TokenService) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticate extracts the bearer token from an Authorization header value and
// verifies it. A missing or malformed header fails with ErrUnauthorized before
// any verification is attempted.
func (g *Guard) Authenticate(header string) (*Claims, error) {
	token, ok := parseBearer(header)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return g.tokens.Verify(token)
}

// Protect runs next only when the request carries a valid token, handing it the
// verified claims.
func (g *Guard) Protect(next func(c echo.Context, claims *Claims) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := g.Authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}
		return next(c, claims)
	}
}

func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
