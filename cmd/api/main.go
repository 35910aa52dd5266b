package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"takeitiz/internal/adapters/fx"
	"takeitiz/internal/adapters/geo"
	"takeitiz/internal/adapters/holidays"
	server "takeitiz/internal/adapters/http_server"
	"takeitiz/internal/adapters/memcache"
	"takeitiz/internal/adapters/observability"
	redisad "takeitiz/internal/adapters/redis"
	"takeitiz/internal/app"
	"takeitiz/internal/domain"
	"takeitiz/internal/shared"
	mysqlrepo "takeitiz/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// cache: redis when configured, otherwise in-process
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memcache.New()
	}

	// deps
	rates := app.NewRateService(
		fx.NewERAPI(cfg.FXPrimaryBase, cfg.FXTimeout),
		fx.NewFrankfurter(cfg.FXSecondaryBase, cfg.FXTimeout),
		cache,
		app.RateConfig{
			TouristSpread:  cfg.TouristSpread,
			CashCurrencies: cfg.CashCurrencies,
			FallbackRates:  cfg.FXFallbackRates,
			CacheTTL:       cfg.FXCacheTTL,
		},
	)

	// db (optional): keeps a history of resolved FX quotes
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		rates = rates.WithHistory(mysqlrepo.New(db))
	}

	resolver := app.NewDestinationResolver(geo.New(cfg.GeocoderBase, cfg.GeocodeTimeout))
	est := app.NewEstimator(rates, resolver).
		WithHolidays(holidays.New(cfg.HolidayBase, cfg.FXTimeout))

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{E: est})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
