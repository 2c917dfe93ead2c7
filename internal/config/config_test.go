package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "API_BASE_URL", "SESSION_SECRET", "CSRF_SECRET", "APP_HTTPS"} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, "127.0.0.1:8080", c.Addr())
	assert.Equal(t, "http://127.0.0.1:3001/api", c.APIBaseURL)
	assert.False(t, c.Secure)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("APP_HTTPS", "1")

	c := Load()
	assert.Equal(t, "0.0.0.0:9000", c.Addr())
	assert.Equal(t, "https://api.example.com/api", c.APIBaseURL)
	assert.True(t, c.Secure)
}
