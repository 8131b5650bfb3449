package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the model server is reachable.
	Available(ctx context.Context) bool

	// Model returns the configured model name.
	Model() string
}

// NewClient builds the LLMClient for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) LLMClient {
	if cfg.Provider == ProviderOllama {
		return NewOllamaClient(cfg, observer)
	}
	return NewOpenAIClient(cfg, observer)
}

// prompt is the provider-neutral request handed to a transport.
type prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// transport performs a single provider call and returns (text, model).
type transport func(ctx context.Context, p prompt) (string, string, error)

// baseClient carries the retry, timeout and observer logic shared by providers.
type baseClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func newBaseClient(cfg LLMConfig, observer Observer) baseClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return baseClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *baseClient) Model() string {
	return c.cfg.Model
}

func (c *baseClient) generate(ctx context.Context, req GenerateRequest, do transport) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	p := prompt{
		System:      req.SystemPrompt,
		User:        req.UserPrompt,
		Temperature: temp,
		MaxTokens:   maxTok,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		text, model, err := do(ctx, p)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			if model == "" {
				model = c.cfg.Model
			}
			return &GenerateResponse{
				Text:      text,
				Model:     model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a dead server.
		if ctx.Err() != nil || isConnectionError(err) {
			break
		}
	}

	latency := time.Since(start).Milliseconds()

	var result error
	switch {
	case ctx.Err() != nil:
		result = ErrTimeout
	case isConnectionError(lastErr):
		result = ErrUnavailable
	case errors.Is(lastErr, ErrInvalidOutput):
		result = lastErr
	default:
		result = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}

	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(result),
	})
	return nil, result
}

// postJSON sends body to url and returns the raw response body for a 200 reply.
func (c *baseClient) postJSON(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

// probe reports whether a GET on url answers 200 within two seconds.
func (c *baseClient) probe(ctx context.Context, url string, headers map[string]string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	baseClient
}

// NewOllamaClient creates an LLMClient that talks to a local Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	return &ollamaClient{baseClient: newBaseClient(cfg, observer)}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.doRequest)
}

func (c *ollamaClient) doRequest(ctx context.Context, p prompt) (string, string, error) {
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: p.System,
		Prompt: p.User,
		Stream: false,
		Options: ollamaOptions{
			Temperature: p.Temperature,
			NumPredict:  p.MaxTokens,
		},
	}

	respBody, err := c.postJSON(ctx, c.cfg.Endpoint+"/api/generate", body, nil)
	if err != nil {
		return "", "", err
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("decoding response: %w", err)
	}
	return resp.Response, resp.Model, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/api/tags", nil)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
