package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veilart/market-ledger/internal/domain"
	"github.com/veilart/market-ledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"
	errCodePaymentRequired  ErrorCode = "payment_required"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps ledger errors onto HTTP statuses. Order matters:
// the specific kinds are checked before the broad ErrInvalidInput family.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Not found", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller is not permitted", err.Error())
	case errors.Is(err, domain.ErrNotPending):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Request already resolved", err.Error())
	case errors.Is(err, domain.ErrInvalidProof):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, "Ciphertext proof verification failed", err.Error())
	case errors.Is(err, domain.ErrPaymentFailed), errors.Is(err, domain.ErrRefundFailed):
		respondWithError(c, http.StatusPaymentRequired, errCodePaymentRequired, "Payment could not be settled", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", err.Error())
	default:
		respondInternalError(c, err, "Internal error")
	}
}
