package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := load(viper.New())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.LenientTemperatureUnits)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LENIENT_TEMPERATURE_UNITS", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := load(viper.New())

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.LenientTemperatureUnits)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_NonPositiveLimitsFallBack(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "0")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg := load(viper.New())

	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
}
