package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DB_DRIVER", "JWT_ALGORITHM", "REQUEST_TIMEOUT", "RATE_LIMIT_MAX", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	// env kosong dianggap tidak diset, default yang dipakai
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("RATE_LIMIT_MAX", "7")

	cfg := Load()
	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 7, cfg.RateLimitMax)

	cfg.Report(zaptest.NewLogger(t))
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		log, err := NewLogger(env)
		require.NoError(t, err)
		require.NotNil(t, log)
	}
}

func TestGormLoggerLogModeReturnsCopy(t *testing.T) {
	base := NewGormLogger(zaptest.NewLogger(t)).(*GormLogger)
	silent := base.LogMode(logger.Silent).(*GormLogger)

	assert.Equal(t, logger.Warn, base.LogLevel)
	assert.Equal(t, logger.Silent, silent.LogLevel)
}
