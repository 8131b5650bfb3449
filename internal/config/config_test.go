package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/scotty/internal/llm"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SCOTTY_DB", "/tmp/scotty-test.db")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/tmp/scotty-test.db", cfg.DBPath)
	assert.Equal(t, AdvisorDirect, cfg.Advisor.Mode)
	assert.Equal(t, "http://127.0.0.1:5000/query", cfg.Advisor.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Advisor.CacheTTL)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "scotty.local", cfg.Calendar.UIDDomain)
	assert.Equal(t, ".", cfg.Calendar.ExportDir)
	assert.Equal(t, time.Local, cfg.Calendar.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCOTTY_ADVISOR_MODE", "Remote")
	t.Setenv("SCOTTY_API_ENDPOINT", "http://advisor:8000/query")
	t.Setenv("SCOTTY_ADVISOR_TIMEOUT", "5s")
	t.Setenv("SCOTTY_ADVISOR_CACHE_TTL", "0")
	t.Setenv("SCOTTY_LLM_PROVIDER", "ollama")
	t.Setenv("SCOTTY_LLM_MODEL", "llama3.2")
	t.Setenv("SCOTTY_LLM_TIMEOUT_MS", "1500")
	t.Setenv("SCOTTY_PORT", "8081")
	t.Setenv("SCOTTY_ALLOWED_ORIGINS", "http://localhost:8501, https://scotty.example ")
	t.Setenv("SCOTTY_TIMEZONE", "UTC")
	t.Setenv("SCOTTY_PAST_COURSES", "15-440: Distributed Systems,15-213: Computer Systems")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, AdvisorRemote, cfg.Advisor.Mode)
	assert.Equal(t, "http://advisor:8000/query", cfg.Advisor.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Advisor.Timeout)
	assert.Zero(t, cfg.Advisor.CacheTTL)
	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.Equal(t, 1500, cfg.LLM.TaskTimeout(llm.TaskRecommend))
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:8501", "https://scotty.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Calendar.Location)
	assert.Equal(t, []string{"15-440: Distributed Systems", "15-213: Computer Systems"}, cfg.PastCourses)
}

func TestLoad_UnprefixedFallbacks(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")
	t.Setenv("OPENAI_API_BASE", "https://proxy.example/v1")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "sk-fallback", cfg.LLM.APIKey)
	assert.Equal(t, "https://proxy.example/v1", cfg.LLM.Endpoint)

	t.Setenv("SCOTTY_LLM_API_KEY", "sk-primary")
	t.Setenv("SCOTTY_LLM_ENDPOINT", "https://llm.example/v1")
	cfg, err = Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "sk-primary", cfg.LLM.APIKey)
	assert.Equal(t, "https://llm.example/v1", cfg.LLM.Endpoint)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SCOTTY_CALENDAR_PRODID=-//Test//EN\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SCOTTY_CALENDAR_PRODID") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "-//Test//EN", cfg.Calendar.ProdID)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("advisor mode", func(t *testing.T) {
		t.Setenv("SCOTTY_ADVISOR_MODE", "carrier-pigeon")
		_, err := Load(missingEnvFile(t))
		assert.ErrorContains(t, err, "ADVISOR_MODE")
	})
	t.Run("provider", func(t *testing.T) {
		t.Setenv("SCOTTY_LLM_PROVIDER", "bard")
		_, err := Load(missingEnvFile(t))
		assert.ErrorContains(t, err, "LLM_PROVIDER")
	})
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("SCOTTY_TIMEZONE", "Mars/Olympus_Mons")
		_, err := Load(missingEnvFile(t))
		assert.ErrorContains(t, err, "TIMEZONE")
	})
}

func TestParseDuration_Fallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
}
