// Package advisor provides the capability that turns a recommendation query
// into the advisor's free-text answer.
package advisor

import (
	"context"
	"errors"
)

var (
	ErrUnavailable = errors.New("advisor unavailable")
	ErrTimeout     = errors.New("advisor timed out")
	ErrUpstream    = errors.New("advisor returned an error")
	ErrEmptyQuery  = errors.New("query is empty")
)

// Status describes the readiness of an advisor.
type Status struct {
	Ready  bool   `json:"index_loaded"`
	Model  string `json:"model"`
	Detail string `json:"detail,omitempty"`
}

// Advisor answers a recommendation query. The answer is expected, but not
// guaranteed, to be a JSON object with a "courses" array.
type Advisor interface {
	Answer(ctx context.Context, query string) (string, error)
	Status(ctx context.Context) Status
}
