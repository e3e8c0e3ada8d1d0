package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	CacheTTL    time.Duration
	Workers     int
	AuthRPS     float64
	AuthBurst   int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/reviewboard?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		JWTSecret:   env("JWT_SECRET", ""),
		TokenTTL:    time.Duration(atoi("TOKEN_TTL_HOURS", 168)) * time.Hour,
		BcryptCost:  atoi("BCRYPT_COST", 10),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		Workers:     atoi("RATINGS_WORKERS", 8),
		AuthRPS:     float64(atoi("AUTH_RPS", 5)),
		AuthBurst:   atoi("AUTH_BURST", 10),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
