package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits list-valued variables

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Secrets for the hosted providers (Supabase,
// OpenAI, Anthropic) are plain strings; the service never persists them.
type Config struct {
	Env               string   // application environment (e.g. "dev", "prod")
	Port              string   // HTTP port to listen on
	DatabaseURL       string   // Postgres connection string (Supabase direct URL)
	SupabaseURL       string   // base URL of the Supabase project
	SupabaseAnonKey   string   // anon API key for the Supabase project
	SupabaseJWTSecret string   // secret used to verify Supabase-issued JWTs
	OpenAIAPIKey      string   // API key for the OpenAI chat completion API
	OpenAIModel       string   // model used for plan generation prompts
	AnthropicAPIKey   string   // optional Anthropic key; empty disables the fallback
	AnthropicModel    string   // Anthropic model used when the fallback is active
	Temperature       float64  // sampling temperature for LLM calls
	AllowedOrigins    []string // CORS origins, "*" allows all
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is merged first so local
// development does not need exported variables.  Required variables are
// enforced by must() and missing values cause the program to exit with a
// fatal log message.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine; real env always wins

	return Config{
		Env:               getenvDefault("APP_ENV", "development"),
		Port:              getenvDefault("APP_PORT", "8000"),
		DatabaseURL:       must("DATABASE_URL"),
		SupabaseURL:       must("SUPABASE_URL"),
		SupabaseAnonKey:   must("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: must("SUPABASE_JWT_SECRET"),
		OpenAIAPIKey:      must("OPENAI_API_KEY"),
		OpenAIModel:       getenvDefault("OPENAI_MODEL", "gpt-4"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"), // optional
		AnthropicModel:    getenvDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
		Temperature:       mustFloat("OPENAI_TEMPERATURE", 0.7),
		AllowedOrigins:    splitList(getenvDefault("ALLOWED_ORIGINS", "*")),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenvDefault returns the variable's value or the provided default when it
// is unset or empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mustFloat reads an optional float variable, falling back to def when unset.
// An unparsable value is a configuration mistake and terminates the program.
func mustFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, s)
	}
	return f
}

// splitList splits a comma separated value into trimmed, non-empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
