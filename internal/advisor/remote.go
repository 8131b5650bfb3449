package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "http://127.0.0.1:5000/query"
	DefaultTimeout  = 30 * time.Second

	// NoResponseText is returned when the server answers without a response field.
	NoResponseText = "Sorry, no response received."
)

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the success body of POST /query.
type QueryResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the failure body of POST /query.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	IndexLoaded bool   `json:"index_loaded"`
	Model       string `json:"model"`
}

// Remote calls an advisor API over HTTP. A failed call is not retried.
type Remote struct {
	endpoint  string
	healthURL string
	http      *http.Client
}

// NewRemote returns an Advisor posting to endpoint. A zero timeout uses
// DefaultTimeout.
func NewRemote(endpoint string, timeout time.Duration) (*Remote, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid advisor endpoint %q", endpoint)
	}
	health := *u
	health.Path = path.Join(path.Dir(u.Path), "health")
	health.RawQuery = ""

	return &Remote{
		endpoint:  endpoint,
		healthURL: health.String(),
		http:      &http.Client{Timeout: timeout},
	}, nil
}

func (r *Remote) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	body, err := json.Marshal(QueryRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("marshaling query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, upstreamMessage(data))
	}
	return decodeAnswer(data), nil
}

func (r *Remote) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.healthURL, nil)
	if err != nil {
		return Status{Detail: err.Error()}
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return Status{Detail: classifyTransportError(err).Error()}
	}
	defer resp.Body.Close()

	var h HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Status{Detail: fmt.Sprintf("decoding health response: %v", err)}
	}
	return Status{Ready: resp.StatusCode == http.StatusOK && h.IndexLoaded, Model: h.Model, Detail: h.Status}
}

// decodeAnswer accepts {"response": "..."}, a JSON string, or a bare body.
// A bare {"courses": [...]} object is the answer itself.
func decodeAnswer(data []byte) string {
	trimmed := bytes.TrimSpace(data)

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err == nil {
		raw, ok := wrapped["response"]
		if !ok {
			if _, bare := wrapped["courses"]; bare {
				return string(trimmed)
			}
			return NoResponseText
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func upstreamMessage(data []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		if e.Details != "" {
			return e.Error + ": " + e.Details
		}
		return e.Error
	}
	return strings.TrimSpace(string(data))
}

func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
