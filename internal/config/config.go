package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                    string
	Env                     string
	LogLevel                string
	MaxBodyBytes            int64
	MaxUploadBytes          int64
	RateLimitRPS            float64
	RateLimitBurst          int
	CORSAllowedOrigins      []string
	LenientTemperatureUnits bool
	ShutdownTimeout         time.Duration
}

// Load reads the configuration from the environment, falling back to defaults.
// A .env file is expected to have been loaded into the environment already.
func Load() Config {
	return load(viper.New())
}

func load(v *viper.Viper) Config {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("MAX_UPLOAD_BYTES", 50<<20)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("LENIENT_TEMPERATURE_UNITS", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	cfg := Config{
		Port:                    v.GetString("PORT"),
		Env:                     v.GetString("ENV"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		MaxBodyBytes:            v.GetInt64("MAX_BODY_BYTES"),
		MaxUploadBytes:          v.GetInt64("MAX_UPLOAD_BYTES"),
		RateLimitRPS:            v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:          v.GetInt("RATE_LIMIT_BURST"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LenientTemperatureUnits: v.GetBool("LENIENT_TEMPERATURE_UNITS"),
		ShutdownTimeout:         v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 50 << 20
	}

	return cfg
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
