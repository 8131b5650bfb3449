package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskRecommend))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	cfg.Tasks = map[TaskType]TaskConfig{}
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskRecommend))

	cfg.Tasks[TaskRecommend] = TaskConfig{TimeoutMs: 50}
	assert.Equal(t, 50, cfg.TaskTimeout(TaskRecommend))
}

func TestDefaultEndpoint(t *testing.T) {
	assert.Equal(t, "http://localhost:11434", DefaultEndpoint(ProviderOllama))
	assert.Equal(t, "https://api.openai.com/v1", DefaultEndpoint(ProviderOpenAI))
	assert.Equal(t, "https://api.openai.com/v1", DefaultEndpoint("other"))
}
