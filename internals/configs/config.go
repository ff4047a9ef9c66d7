package configs

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret    string
	JWTAlgorithm string

	RequestTimeout   time.Duration
	CORSAllowOrigins string
	RateLimitMax     int
}

// =======================
// ENV LOADER
// =======================

// LoadDotenv memuat .env kalau ada. Di Railway / container ENV sistem yang dipakai.
func LoadDotenv() error {
	return godotenv.Load()
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("REQUEST_TIMEOUT", "5s")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_MAX", 100)

	return &Config{
		AppEnv:           strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		Port:             v.GetString("PORT"),
		DBDriver:         strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBDSN:            v.GetString("DB_DSN"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSSLMode:        v.GetString("DB_SSLMODE"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTAlgorithm:     v.GetString("JWT_ALGORITHM"),
		RequestTimeout:   v.GetDuration("REQUEST_TIMEOUT"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Report mencatat kondisi config penting tanpa membocorkan secret.
func (c *Config) Report(log *zap.Logger) {
	if c.JWTSecret == "" {
		log.Warn("❌ JWT_SECRET belum diset!")
	} else {
		log.Info("✅ JWT_SECRET berhasil dimuat.", zap.Int("length", len(c.JWTSecret)))
	}
	log.Info("config loaded",
		zap.String("app_env", c.AppEnv),
		zap.String("db_driver", c.DBDriver),
		zap.String("jwt_algorithm", c.JWTAlgorithm),
		zap.Duration("request_timeout", c.RequestTimeout),
	)
}

// =======================
// LOGGER
// =======================

func NewLogger(appEnv string) (*zap.Logger, error) {
	if strings.EqualFold(appEnv, "production") {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
