package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskRecommend TaskType = "recommend"
)

// Provider selects the wire protocol spoken to the model server.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider   Provider
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig targeting the OpenAI API with gpt-4o.
// Retries are off: a failed advisor call is reported, not repeated.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderOpenAI,
		LogCalls:   false,
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o",
		TimeoutMs:  30000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskRecommend: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// DefaultEndpoint returns the conventional base URL for a provider.
func DefaultEndpoint(p Provider) string {
	if p == ProviderOllama {
		return "http://localhost:11434"
	}
	return "https://api.openai.com/v1"
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
