package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/parambind/core"
	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	// Detail is the client-facing message or validation detail list.
	Detail   any
	LogLevel slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status and response detail. Validation
// errors win over HTTP errors; anything else is a 500 with a generic message.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Detail:     http.StatusText(http.StatusInternalServerError),
	}

	var httpErr core.HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Detail = httpErr.Error()
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Detail = ValidationDetails(validationErr)
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the default error handler. It logs every error
// (warn for 4xx, error for 5xx) and renders an ErrorResponse:
//
//	{"detail": "Cannot parse request body"}
//	{"detail": [{"loc": ["query", "limit"], "msg": "value is not a valid integer", "type": "type_error.integer"}]}
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		response := jsonResponse{status: info.StatusCode, body: ErrorResponse{Detail: info.Detail}}
		if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
