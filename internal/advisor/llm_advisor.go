package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scotty/internal/intelligence"
	"github.com/alexanderramin/scotty/internal/llm"
)

// LLM answers queries directly with a language model.
type LLM struct {
	client llm.LLMClient
}

// NewLLM wraps client as an Advisor.
func NewLLM(client llm.LLMClient) *LLM {
	return &LLM{client: client}
}

func (a *LLM) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecommend,
		SystemPrompt: intelligence.AdvisorSystemPrompt,
		UserPrompt:   query,
	})
	if err != nil {
		return "", mapLLMError(err)
	}
	return resp.Text, nil
}

func (a *LLM) Status(ctx context.Context) Status {
	st := Status{Model: a.client.Model(), Ready: a.client.Available(ctx)}
	if !st.Ready {
		st.Detail = "model server not reachable"
	}
	return st
}

func mapLLMError(err error) error {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, llm.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
