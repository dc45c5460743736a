// Package handler holds the HTTP handlers of the blog API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "blogapi/internal/errors"
)

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// bindAndValidate decodes the JSON body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}
	return c.Validate(req)
}

// HTTPErrorHandler renders every error as {"error": ..., "code": ...}. Internal
// errors are logged and replaced by a generic message.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var resp *apperrors.HTTPError
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			resp = fromEchoError(echoErr)
		} else {
			resp = apperrors.MapErrorToHTTP(err)
		}

		if resp.IsInternal() {
			logger.Error().Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.StatusCode)
		} else {
			err = c.JSON(resp.StatusCode, resp.ToErrorResponse())
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

// fromEchoError converts errors raised by echo itself (routing, binding,
// timeouts, recovered panics).
func fromEchoError(he *echo.HTTPError) *apperrors.HTTPError {
	code := "HTTP_ERROR"
	switch he.Code {
	case http.StatusBadRequest:
		code = "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case http.StatusNotFound:
		code = "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		code = "METHOD_NOT_ALLOWED"
	case http.StatusServiceUnavailable:
		code = "UNAVAILABLE"
	default:
		if he.Code >= http.StatusInternalServerError {
			return apperrors.MapErrorToHTTP(he)
		}
	}

	msg, ok := he.Message.(string)
	if !ok || msg == "" {
		msg = http.StatusText(he.Code)
	}
	return apperrors.NewHTTPError(he.Code, msg, code)
}
