package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexanderramin/scotty/internal/llm"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	AdvisorDirect = "direct"
	AdvisorRemote = "remote"

	envPrefix = "SCOTTY"
)

type Config struct {
	Env         string
	DBPath      string
	PastCourses []string

	Log      LogConfig
	Advisor  AdvisorConfig
	LLM      llm.LLMConfig
	Server   ServerConfig
	Calendar CalendarConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// AdvisorConfig selects how recommendation queries are answered.
type AdvisorConfig struct {
	Mode     string
	Endpoint string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// CalendarConfig controls exported events.
type CalendarConfig struct {
	Location  *time.Location
	UIDDomain string
	ProdID    string
	ExportDir string
}

// Load reads .env (or the given files) into the environment, then builds
// the configuration from SCOTTY_* variables.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unprefixed names honoured for compatibility with hosted deployments.
	_ = v.BindEnv("PLATFORM_PORT", "PORT")
	_ = v.BindEnv("OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("OPENAI_API_BASE", "OPENAI_API_BASE")

	setDefaults(v)

	cfg := &Config{
		Env:         v.GetString("ENV"),
		DBPath:      v.GetString("DB"),
		PastCourses: splitAndTrim(v.GetString("PAST_COURSES")),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Advisor = AdvisorConfig{
		Mode:     strings.ToLower(v.GetString("ADVISOR_MODE")),
		Endpoint: v.GetString("API_ENDPOINT"),
		Timeout:  parseDuration(v.GetString("ADVISOR_TIMEOUT"), 30*time.Second),
		CacheTTL: parseDuration(v.GetString("ADVISOR_CACHE_TTL"), 10*time.Minute),
	}
	if cfg.Advisor.Mode != AdvisorDirect && cfg.Advisor.Mode != AdvisorRemote {
		return nil, fmt.Errorf("invalid %s_ADVISOR_MODE %q (want %s or %s)", envPrefix, cfg.Advisor.Mode, AdvisorDirect, AdvisorRemote)
	}

	llmCfg, err := loadLLM(v)
	if err != nil {
		return nil, err
	}
	cfg.LLM = llmCfg

	port := v.GetInt("PORT")
	if port == 0 {
		port = v.GetInt("PLATFORM_PORT")
	}
	if port == 0 {
		port = 5000
	}
	cfg.Server = ServerConfig{
		Port:           port,
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
	}

	loc := time.Local
	if tz := v.GetString("TIMEZONE"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid %s_TIMEZONE: %w", envPrefix, err)
		}
	}
	cfg.Calendar = CalendarConfig{
		Location:  loc,
		UIDDomain: v.GetString("CALENDAR_UID_DOMAIN"),
		ProdID:    v.GetString("CALENDAR_PRODID"),
		ExportDir: v.GetString("EXPORT_DIR"),
	}

	return cfg, nil
}

func loadLLM(v *viper.Viper) (llm.LLMConfig, error) {
	cfg := llm.DefaultConfig()

	provider := llm.Provider(strings.ToLower(v.GetString("LLM_PROVIDER")))
	switch provider {
	case llm.ProviderOpenAI, llm.ProviderOllama:
		cfg.Provider = provider
	default:
		return cfg, fmt.Errorf("invalid %s_LLM_PROVIDER %q", envPrefix, provider)
	}

	cfg.Endpoint = llm.DefaultEndpoint(cfg.Provider)
	if cfg.Provider == llm.ProviderOpenAI && v.GetString("OPENAI_API_BASE") != "" {
		cfg.Endpoint = v.GetString("OPENAI_API_BASE")
	}
	if ep := v.GetString("LLM_ENDPOINT"); ep != "" {
		cfg.Endpoint = ep
	}

	if m := v.GetString("LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	cfg.APIKey = v.GetString("LLM_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = v.GetString("OPENAI_API_KEY")
	}
	if ms := v.GetInt("LLM_TIMEOUT_MS"); ms > 0 {
		cfg.TimeoutMs = ms
		task := cfg.Tasks[llm.TaskRecommend]
		task.TimeoutMs = ms
		cfg.Tasks[llm.TaskRecommend] = task
	}
	cfg.MaxRetries = v.GetInt("LLM_MAX_RETRIES")
	cfg.LogCalls = v.GetBool("LLM_LOG_CALLS")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("ADVISOR_MODE", AdvisorDirect)
	v.SetDefault("API_ENDPOINT", "http://127.0.0.1:5000/query")
	v.SetDefault("ADVISOR_TIMEOUT", "30s")
	v.SetDefault("ADVISOR_CACHE_TTL", "10m")

	v.SetDefault("LLM_PROVIDER", string(llm.ProviderOpenAI))
	v.SetDefault("LLM_MAX_RETRIES", 0)
	v.SetDefault("LLM_LOG_CALLS", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("CALENDAR_UID_DOMAIN", "scotty.local")
	v.SetDefault("CALENDAR_PRODID", "-//Scotty Scheduler//EN")
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("PAST_COURSES", "")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".scotty", "scotty.db")
	}
	return filepath.Join(home, ".scotty", "scotty.db")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
