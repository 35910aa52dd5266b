// cmd/estimate runs a single trip estimate from the command line and
// prints the result as JSON. With -warm it also pre-fetches the common
// FX pairs into the cache before estimating, so a shared Redis ends up
// primed for the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"takeitiz/internal/adapters/fx"
	"takeitiz/internal/adapters/geo"
	"takeitiz/internal/adapters/holidays"
	"takeitiz/internal/adapters/memcache"
	"takeitiz/internal/adapters/observability"
	redisad "takeitiz/internal/adapters/redis"
	"takeitiz/internal/app"
	"takeitiz/internal/domain"
	"takeitiz/internal/shared"
)

func main() {
	var (
		dest      = flag.String("destination", "", "free-text destination")
		days      = flag.Int("days", 5, "trip length in days")
		travelers = flag.Int("travelers", 1, "number of travelers")
		style     = flag.String("style", "moderate", "economy|moderate|comfort|luxury")
		vibe      = flag.String("vibe", "mixed", "mixed|culture|gastro|nature|party|family")
		currency  = flag.String("currency", "USD", "target currency code")
		start     = flag.String("start", "", "trip start date, YYYY-MM-DD")
		warm      = flag.Bool("warm", false, "pre-fetch common FX pairs before estimating")
		workers   = flag.Int("workers", 4, "concurrent warmup fetches")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memcache.New()
	}

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

	if *warm {
		warmup(ctx, rates, cfg.CashCurrencies, *workers)
	}

	req := domain.EstimateRequest{
		Destination: *dest,
		Days:        *days,
		Travelers:   *travelers,
		Style:       domain.Style(strings.ToLower(*style)),
		Vibe:        domain.Vibe(strings.ToLower(*vibe)),
		Currency:    strings.ToUpper(*currency),
	}
	if *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatal().Str("start", *start).Msg("start must be YYYY-MM-DD")
		}
		req.Start = &t
	}

	resolver := app.NewDestinationResolver(geo.New(cfg.GeocoderBase, cfg.GeocodeTimeout))
	est := app.NewEstimator(rates, resolver).
		WithHolidays(holidays.New(cfg.HolidayBase, cfg.FXTimeout))

	res, err := est.Estimate(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("estimate failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal().Err(err).Msg("encode result failed")
	}
}

// warmup resolves USD->code for each cash currency so the quotes land
// in the cache before the estimate (and before any API traffic).
func warmup(ctx context.Context, rates *app.RateService, codes []string, workers int) {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, code := range codes {
		code := code

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			tr := domain.NewTrail()
			rate := rates.Rate(ctx, "USD", target, tr)
			log.Info().Str("pair", "USD/"+target).Float64("rate", rate).Msg("warmed")
		}(code)
	}

	wg.Wait()
	log.Info().Int("pairs", len(codes)).Msg("fx warmup completed")
}
