package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/calendar"
	"github.com/alexanderramin/scotty/internal/extract"
	"github.com/alexanderramin/scotty/internal/repository"
	"github.com/alexanderramin/scotty/internal/service"
)

// apiError is the body of every failed /api/v1 response.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	status  int
}

type envelope struct {
	Data  any       `json:"data,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

func badRequest(message string) *apiError {
	return &apiError{Code: "BAD_REQUEST", Message: message, status: http.StatusBadRequest}
}

// fromError maps a service error to its HTTP status and code.
func fromError(err error) *apiError {
	e := &apiError{Message: err.Error()}
	switch {
	case errors.Is(err, service.ErrMissingInterests), errors.Is(err, advisor.ErrEmptyQuery):
		e.Code, e.status = "BAD_REQUEST", http.StatusBadRequest
	case errors.Is(err, advisor.ErrUpstream):
		e.Code, e.status = "UPSTREAM_ERROR", http.StatusBadGateway
	case errors.Is(err, advisor.ErrUnavailable):
		e.Code, e.status = "ADVISOR_UNAVAILABLE", http.StatusServiceUnavailable
	case errors.Is(err, advisor.ErrTimeout):
		e.Code, e.status = "ADVISOR_TIMEOUT", http.StatusGatewayTimeout
	case errors.Is(err, calendar.ErrInvalidDay), errors.Is(err, calendar.ErrInvalidTime):
		e.Code, e.status = "INVALID_RECORD", http.StatusUnprocessableEntity
	case errors.Is(err, extract.ErrExtraction):
		e.Code, e.status = "EXTRACTION_FAILED", http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrNotFound):
		e.Code, e.status = "NOT_FOUND", http.StatusNotFound
	default:
		e.Code, e.status = "INTERNAL_ERROR", http.StatusInternalServerError
		e.Message = "internal server error"
	}
	return e
}

func respondError(c *gin.Context, err error) {
	var e *apiError
	if !errors.As(err, &e) {
		_ = c.Error(err)
		e = fromError(err)
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(e.status, envelope{Error: e})
}

func respondJSON(c *gin.Context, status int, data any) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, envelope{Data: data})
}

func (e *apiError) Error() string { return e.Message }
