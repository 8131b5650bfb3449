package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// openAIClient implements LLMClient against an OpenAI-compatible
// chat-completions API (OpenAI, LiteLLM proxies, vLLM).
type openAIClient struct {
	baseClient
}

// NewOpenAIClient creates an LLMClient for an OpenAI-compatible endpoint.
// cfg.Endpoint is the API base, e.g. "https://api.openai.com/v1".
func NewOpenAIClient(cfg LLMConfig, observer Observer) LLMClient {
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &openAIClient{baseClient: newBaseClient(cfg, observer)}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.doRequest)
}

func (c *openAIClient) doRequest(ctx context.Context, p prompt) (string, string, error) {
	messages := make([]chatMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: p.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: p.User})

	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}

	respBody, err := c.postJSON(ctx, c.cfg.Endpoint+"/chat/completions", body, c.authHeaders())
	if err != nil {
		return "", "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", "", fmt.Errorf("%w: response has no choices", ErrInvalidOutput)
	}
	return resp.Choices[0].Message.Content, resp.Model, nil
}

func (c *openAIClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/models", c.authHeaders())
}

func (c *openAIClient) authHeaders() map[string]string {
	if c.cfg.APIKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}
