package dto

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/platform/logging"
)

// internalErrorMessage is the fallback returned when a handler has no
// endpoint-specific message for an unexpected failure.
const internalErrorMessage = "Internal server error"

// StatusForError maps a domain error to an HTTP status code.
// Unknown errors map to 500 Internal Server Error.
func StatusForError(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusBadRequest
	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps a domain error to an HTTP status and error envelope.
// Client errors carry the domain message; unexpected errors get a generic
// message so internals are not leaked.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return status, NewErrorResponse(internalErrorMessage)
	}

	return status, NewErrorResponse(clientMessage(err))
}

// clientMessage strips the domain wrapper prefixes so responses read as
// plain sentences rather than wrapped error chains.
func clientMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Field != "" {
			return validationErr.Field + " " + validationErr.Message
		}

		return validationErr.Message
	}

	var unauthorizedErr *domain.UnauthorizedError
	if errors.As(err, &unauthorizedErr) && unauthorizedErr.Reason != "" {
		return unauthorizedErr.Reason
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) && conflictErr.Reason != "" {
		return conflictErr.Reason
	}

	return err.Error()
}

// HandleError writes an error envelope for a service failure.
// The fallback message replaces the generic one when the error is
// unexpected; pass "" to keep the generic message. Internal errors are
// logged with the request-scoped logger before responding.
func HandleError(c *gin.Context, err error, fallback string) {
	status, errResp := MapDomainError(err)

	if status == http.StatusInternalServerError {
		if fallback != "" {
			errResp = NewErrorResponse(fallback)
		}

		logger := logging.FromContext(c.Request.Context())

		var traceID string
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			traceID = span.SpanContext().TraceID().String()
		}

		logger.Error("internal error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"trace_id", traceID,
		)
	}

	c.JSON(status, errResp)
}

// RespondWithMessage writes an error envelope with an explicit status and
// message. Use this for adapter-level failures such as malformed request
// bodies that never reach a service.
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorResponse(message))
}

// AbortWithError aborts the request chain and writes an error envelope.
// Use this in middleware to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	c.AbortWithStatusJSON(status, errResp)
}

// HandleBindError writes a 400 response for a binding or validation
// failure raised by the dto helpers. Field-level validator messages are
// collapsed into a single sentence; the first field in name order wins.
func HandleBindError(c *gin.Context, err error) {
	message := "Invalid request body"

	if fieldErrors := ValidationErrors(err); len(fieldErrors) > 0 {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}

		sort.Strings(fields)
		message = fields[0] + " " + fieldErrors[fields[0]]
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse(message))
}
