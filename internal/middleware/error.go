// Package middleware holds the echo middleware shared by all routes
package middleware

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Message string         `json:"message"`
	TraceID string         `json:"trace_id,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error translates handler errors into JSON responses.
func Error(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		ctx := c.Request().Context()
		log.Errorw("api is returning an error", "error", err, "path", c.Path())
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal Server Error"
		meta := map[string]any{}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		if httperror.IsHTTPError(err) {
			httperr := httperror.ToHTTPError(err)
			code = httperror.GetStatusCode(err)
			message = httperr.Error()
			meta = httperr.Meta
		}

		var traceID string
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}

		_ = c.JSON(code, ErrorResponse{
			Message: message,
			TraceID: traceID,
			Meta:    meta,
		})
	}
}
