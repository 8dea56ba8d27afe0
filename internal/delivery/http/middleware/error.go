package middleware

import (
	"errors"
	"log"

	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMiddleware renders every handler error as the JSON envelope. Handlers
// may return usecase sentinels as-is; they are translated to HTTP statuses
// here. 5xx causes are logged and never sent to the client.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logf("[HTTP] panic recovered | rid=%s path=%s panic=%v", requestID(c), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := resolveError(err)
		if status >= fiber.StatusInternalServerError {
			m.logf("[HTTP] request failed | rid=%s user_id=%s path=%s status=%d err=%v",
				requestID(c), userIDString(c), c.Path(), status, err)
		}
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) logf(format string, args ...any) {
	if m != nil && m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

func resolveError(err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg, appErr.Data
	}

	if status, msg, ok := usecaseStatus(err); ok {
		return status, msg, nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

// usecaseStatus maps usecase sentinels. Invalid input keeps the wrapped
// detail so clients see which field failed.
func usecaseStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return fiber.StatusUnauthorized, response.MessageUnauthorized, true
	case errors.Is(err, usecase.ErrJobNotFound):
		return fiber.StatusNotFound, usecase.ErrJobNotFound.Error(), true
	case errors.Is(err, usecase.ErrNoJobsFound):
		return fiber.StatusNotFound, usecase.ErrNoJobsFound.Error(), true
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error(), true
	}
	return 0, "", false
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return response.MessageBadRequest
	case fiber.StatusUnauthorized:
		return response.MessageUnauthorized
	case fiber.StatusForbidden:
		return response.MessageForbidden
	case fiber.StatusNotFound:
		return response.MessageNotFound
	case fiber.StatusConflict:
		return response.MessageConflict
	case fiber.StatusUnprocessableEntity:
		return response.MessageUnprocessableEntity
	default:
		if status >= 500 {
			return response.MessageInternalServerError
		}
		return response.MessageError
	}
}
