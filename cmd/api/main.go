package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "reviewboard/internal/adapters/http_server"
	"reviewboard/internal/adapters/observability"
	redisad "reviewboard/internal/adapters/redis"
	"reviewboard/internal/app"
	"reviewboard/internal/auth"
	"reviewboard/internal/shared"
	mysqlrepo "reviewboard/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	handlers := &server.Handlers{
		Auth:         app.NewAuthService(repo, issuer, cfg.BcryptCost),
		Catalog:      app.NewCatalogService(repo, cache, cfg.CacheTTL),
		Reviews:      app.NewReviewService(repo, cache, cfg.CacheTTL),
		Comments:     app.NewCommentService(repo, cache, cfg.CacheTTL),
		AuthThrottle: server.Throttle(rate.Limit(cfg.AuthRPS), cfg.AuthBurst),
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
