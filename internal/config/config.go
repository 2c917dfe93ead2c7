package config

import "os"

// Config is the frontend's runtime configuration, environment-driven with
// development defaults. The backend API base URL is the only collaborator
// address this process needs.
type Config struct {
	Host          string
	Port          string
	APIBaseURL    string
	SessionSecret string
	CSRFSecret    string
	// Secure marks cookies HTTPS-only; set APP_HTTPS=1 behind a TLS proxy.
	Secure bool
}

func Load() Config {
	return Config{
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          getenv("PORT", "8080"),
		APIBaseURL:    getenv("API_BASE_URL", "http://127.0.0.1:3001/api"),
		SessionSecret: getenv("SESSION_SECRET", "dev-insecure-secret-change-me-now"),
		CSRFSecret:    getenv("CSRF_SECRET", "dev-insecure-csrf-change-me-now"),
		Secure:        os.Getenv("APP_HTTPS") == "1",
	}
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
