package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"takeitiz/internal/domain"
)

// RateConfig is the immutable FX policy injected at construction.
type RateConfig struct {
	// TouristSpread is multiplied into live quotes when converting into a
	// cash currency, reflecting real-world exchange costs.
	TouristSpread  float64
	CashCurrencies []string

	// FallbackRates maps currency code -> fixed conservative USD->code rate,
	// the always-available last tier.
	FallbackRates map[string]float64

	CacheTTL time.Duration

	// MaxStoredQuoteAge bounds how old a stored quote may be before the
	// history tier is skipped.
	MaxStoredQuoteAge time.Duration
}

// RateService resolves conversion rates through an ordered fallback chain:
// cache, primary live source, backup live source, stored latest quote
// (when a history repo is configured), then the static table. It never
// fails; every tier that fires is recorded on the caller's trail.
type RateService struct {
	primary   domain.RateSource
	secondary domain.RateSource
	cache     domain.Cache
	history   domain.QuoteHistory
	cfg       RateConfig
	cash      map[string]bool
}

func NewRateService(primary, secondary domain.RateSource, cache domain.Cache, cfg RateConfig) *RateService {
	if cfg.TouristSpread <= 0 {
		cfg.TouristSpread = 1.0
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Minute
	}
	if cfg.MaxStoredQuoteAge <= 0 {
		cfg.MaxStoredQuoteAge = 7 * 24 * time.Hour
	}
	cash := make(map[string]bool, len(cfg.CashCurrencies))
	for _, c := range cfg.CashCurrencies {
		cash[strings.ToUpper(c)] = true
	}
	return &RateService{primary: primary, secondary: secondary, cache: cache, cfg: cfg, cash: cash}
}

// WithHistory attaches an FX quote history store used both for recording
// resolved quotes and as a pre-static fallback tier.
func (s *RateService) WithHistory(h domain.QuoteHistory) *RateService {
	s.history = h
	return s
}

// Rate resolves base->target. The contract is total: some usable rate
// always comes back, degrading tier by tier.
func (s *RateService) Rate(ctx context.Context, base, target string, tr *domain.Trail) float64 {
	base, target = strings.ToUpper(base), strings.ToUpper(target)
	if base == target {
		tr.OK("fx", "same currency %s, rate 1.0", base)
		return 1.0
	}

	key := cacheKey(base, target)
	if s.cache != nil {
		var q domain.FXQuote
		if ok, err := s.cache.Get(ctx, key, &q); err == nil && ok && q.Rate > 0 {
			tr.OK("fx", "cached %s->%s rate %.4f (via %s)", base, target, q.Rate, q.Source)
			return q.Rate
		}
	}

	if rate, source, live := s.liveRate(ctx, base, target, tr); live {
		rate = s.applySpread(rate, target, tr)
		s.remember(ctx, domain.FXQuote{
			Base: base, Quote: target, Rate: rate,
			ResolvedAt: time.Now().UTC(), Source: source,
		})
		return rate
	}

	// Without a direct quote, a non-USD pair composes through USD.
	if base != "USD" && target != "USD" {
		tr.Info("fx", "no direct %s->%s quote, composing via USD", base, target)
		return s.Rate(ctx, base, "USD", tr) * s.Rate(ctx, "USD", target, tr)
	}

	if s.history != nil {
		q, err := s.history.LatestQuote(ctx, base, target)
		if err == nil && q.Rate > 0 && time.Since(q.ResolvedAt) <= s.cfg.MaxStoredQuoteAge {
			tr.Warn("fx", "live sources unavailable; using stored %s->%s rate %.4f from %s",
				base, target, q.Rate, q.ResolvedAt.Format("2006-01-02"))
			return q.Rate
		}
	}

	rate := s.staticRate(base, target)
	tr.Warn("fx", "all FX sources failed; using static fallback %s->%s rate %.4f", base, target, rate)
	return rate
}

// liveRate walks the live sources in order. Primary success audits OK,
// backup success audits INFO so readers can tell the chain degraded.
func (s *RateService) liveRate(ctx context.Context, base, target string, tr *domain.Trail) (float64, string, bool) {
	sources := []domain.RateSource{s.primary, s.secondary}
	for i, src := range sources {
		if src == nil {
			continue
		}
		rates, err := src.Rates(ctx, base)
		if err != nil {
			tr.Warn("fx", "%s unavailable: %v", src.Name(), err)
			continue
		}
		rate, ok := rates[target]
		if !ok || rate <= 0 {
			tr.Info("fx", "%s has no %s->%s quote", src.Name(), base, target)
			continue
		}
		msg := fmt.Sprintf("%s->%s rate %.4f via %s", base, target, rate, src.Name())
		if i == 0 {
			tr.OK("fx", "%s", msg)
		} else {
			tr.Info("fx", "primary down, %s", msg)
		}
		return rate, src.Name(), true
	}
	return 0, "", false
}

func (s *RateService) applySpread(rate float64, target string, tr *domain.Trail) float64 {
	if s.cfg.TouristSpread == 1.0 || !s.cash[target] {
		return rate
	}
	tr.Info("fx", "tourist spread %.1f%% applied for cash %s", (s.cfg.TouristSpread-1)*100, target)
	return rate * s.cfg.TouristSpread
}

// remember caches the resolved quote and records it to the history store.
// Both are best-effort; rate resolution never fails on storage problems.
func (s *RateService) remember(ctx context.Context, q domain.FXQuote) {
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(q.Base, q.Quote), q, int(s.cfg.CacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("pair", q.Base+q.Quote).Msg("fx cache set failed")
		}
	}
	if s.history != nil {
		if err := s.history.SaveQuote(ctx, q); err != nil {
			log.Warn().Err(err).Str("pair", q.Base+q.Quote).Msg("fx history save failed")
		}
	}
}

func (s *RateService) staticRate(base, target string) float64 {
	if base == "USD" {
		if r, ok := s.cfg.FallbackRates[target]; ok && r > 0 {
			return r
		}
		return 1.0
	}
	// target == "USD" here; composed pairs never reach the static tier
	// directly.
	if r, ok := s.cfg.FallbackRates[base]; ok && r > 0 {
		return 1.0 / r
	}
	return 1.0
}

func cacheKey(base, target string) string {
	return fmt.Sprintf("fx:%s:%s", base, target)
}
