package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reviewboard/internal/adapters/observability"
	redisad "reviewboard/internal/adapters/redis"
	"reviewboard/internal/app"
	"reviewboard/internal/shared"
	mysqlrepo "reviewboard/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.Workers).Msg("ratings job starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewRatingsService(repo, cache)

	ids, err := svc.ItemIDs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listing item ids failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range ids {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(itemID int64) {
			defer wg.Done()
			defer sem.Release(int64(1))

			avg, err := svc.RecomputeItem(ctx, itemID)
			if err != nil {
				log.Warn().Int64("id", itemID).Err(err).Msg("recompute failed")
				return
			}
			log.Info().Int64("id", itemID).Float64("avg", avg).Msg("recompute ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int("items", len(ids)).Msg("ratings job completed")
}
