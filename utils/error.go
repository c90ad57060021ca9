package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes shared by services and handlers.
const (
	ErrCodeUserNotFound = "USER_NOT_FOUND"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeDatabase     = "DATABASE_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUnknown      = "UNKNOWN_ERROR"
)

// AppError is the error type every service returns. Message is safe to show
// to the client; Err keeps the underlying cause for logs.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

func NewUserNotFoundError(userID string) *AppError {
	return &AppError{Code: ErrCodeUserNotFound, Message: "User not found: " + userID}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// NewDatabaseError passes the backend message through to the client.
func NewDatabaseError(err error) *AppError {
	msg := "database error"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{Code: ErrCodeDatabase, Message: msg, Err: err}
}

// AsAppError converts any error into an AppError, defaulting to UNKNOWN_ERROR.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: ErrCodeUnknown, Message: "An unexpected error occurred", Err: err}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch AsAppError(err).Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound, ErrCodeUserNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes {error, code} and logs server-side failures.
func RespondError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	status := StatusFor(appErr)
	logger := GetLogger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err))
	} else {
		logger.Debug("request rejected",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message))
	}
	c.JSON(status, gin.H{"error": appErr.Message, "code": appErr.Code})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
					"code":  ErrCodeUnknown,
				})
			}
		}()
		c.Next()
	}
}
