// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/logging"
)

// traceIDKey is the gin context key under which middleware may store a trace ID.
const traceIDKey = "trace_id"

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound             = "NOT_FOUND"
	ErrorCodeValidation           = "VALIDATION_ERROR"
	ErrorCodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	ErrorCodeInternal             = "INTERNAL_ERROR"
	ErrorCodeTimeout              = "TIMEOUT"
	ErrorCodeBadRequest           = "BAD_REQUEST"
	ErrorCodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID sets the trace ID and returns the same response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeReferentialIntegrity:
		return http.StatusUnprocessableEntity
	case ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	case ErrorCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps an error to an HTTP status and envelope.
// Unknown errors become 500 with a generic message so internals never leak.
func MapDomainError(err error) (int, *ErrorResponse) {
	var code string

	switch {
	case err == nil:
		return http.StatusOK, nil
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsReferentialIntegrity(err):
		code = ErrorCodeReferentialIntegrity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return HTTPStatusFromCode(ErrorCodeTimeout), NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp
	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, err.Error())
}

// HandleError writes the envelope for err, tagged with the request's trace ID.
// Internal errors are logged with full detail.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// RespondWithCode writes an adapter-level error that did not come from the domain.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 with field-level details.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the trace ID for the request. It prefers an explicit
// value set on the gin context, then the active OpenTelemetry span, then the
// X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(traceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}

// RespondWithBindError writes the response for an error from BindAndValidate
// or BindQueryAndValidate. Validation failures carry field details and a body
// over the server limit is a 413. Other binding failures get message, so
// decoder internals stay out of responses.
func RespondWithBindError(c *gin.Context, err error, message string) {
	if IsValidationError(err) {
		RespondWithValidationErrors(c, ValidationErrors(err))
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		RespondWithCode(c, ErrorCodePayloadTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}

	logging.FromContext(c.Request.Context()).DebugContext(c.Request.Context(), "request binding failed",
		"error", err.Error(),
	)

	RespondWithCode(c, ErrorCodeBadRequest, message)
}
