package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"takeitiz/internal/adapters/observability"
	"takeitiz/internal/domain"
	"takeitiz/internal/refdata"
)

// lifestyleWeight dampens seasonality's effect on day-to-day spend; only
// lodging absorbs the full seasonal swing.
const lifestyleWeight = 0.45

// Uncertainty margin by how the destination index was resolved.
var marginByConfidence = map[domain.Confidence]float64{
	domain.ConfidenceHigh:   0.10,
	domain.ConfidenceMedium: 0.18,
	domain.ConfidenceLow:    0.25,
}

var (
	ErrEmptyDestination = errors.New("estimate: destination is required")
	ErrInvalidDays      = errors.New("estimate: days must be at least 1")
	ErrInvalidTravelers = errors.New("estimate: travelers must be at least 1")
)

// Estimator composes destination resolution, seasonality, accommodation
// pricing, and currency conversion into one estimate. It is stateless
// across calls; each call owns its trail and result.
type Estimator struct {
	rates    *RateService
	resolver *DestinationResolver
	holidays domain.HolidaySource
}

func NewEstimator(rates *RateService, resolver *DestinationResolver) *Estimator {
	return &Estimator{rates: rates, resolver: resolver}
}

// WithHolidays attaches a public-holiday source; overlapping holidays are
// reported on the result as advisory context.
func (e *Estimator) WithHolidays(h domain.HolidaySource) *Estimator {
	e.holidays = h
	return e
}

// Validate checks caller input. The engine fails fast on invalid numeric
// input instead of estimating garbage; everything past validation degrades
// through fallbacks rather than erroring.
func Validate(req domain.EstimateRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return ErrEmptyDestination
	}
	if req.Days < 1 {
		return ErrInvalidDays
	}
	if req.Travelers < 1 {
		return ErrInvalidTravelers
	}
	return nil
}

func (e *Estimator) Estimate(ctx context.Context, req domain.EstimateRequest) (domain.EstimateResult, error) {
	if err := Validate(req); err != nil {
		return domain.EstimateResult{}, err
	}

	tr := domain.NewTrail()
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	res := e.resolver.Resolve(ctx, req.Destination, tr)
	rate := e.rates.Rate(ctx, "USD", currency, tr)

	season := 1.0
	if req.Start != nil {
		season = refdata.SeasonFactor(res.Profile, int(req.Start.Month()))
		tr.OK("season", "%s profile in %s: factor %.2f", res.Profile, req.Start.Month(), season)
	} else {
		tr.Info("season", "no start date given; neutral seasonal factor")
	}

	style, known := refdata.StyleFor(req.Style)
	if !known {
		tr.Info("style", "unknown style %q; using moderate", req.Style)
	}
	vibe, known := refdata.VibeFor(req.Vibe)
	if !known {
		tr.Info("vibe", "unknown vibe %q; using mixed", req.Vibe)
	}

	// Daily per-person USD by category. Seasonality is dampened here;
	// day-to-day spend moves less with demand than room rates do.
	idx := res.Index.Value / 100.0
	dailySeason := 1 + (season-1)*lifestyleWeight
	dailyUSD := make(map[domain.Category]float64, len(refdata.DailyAnchorsUSD))
	for c, anchor := range refdata.DailyAnchorsUSD {
		dailyUSD[c] = anchor * idx * style.Factor * refdata.VibeMultiplier(vibe, c) * dailySeason * res.Modifier(c)
	}

	// Lodging absorbs the full seasonal factor. Two travelers share a room.
	rooms := (req.Travelers + 1) / 2
	nightly := NightlyRate(res.Index.Value, style.HotelPercentile) * season * res.Modifier(domain.CategoryLodging)
	tr.OK("lodging", "nightly rate %.0f USD at percentile %.2f, %d room(s)", nightly, style.HotelPercentile, rooms)

	days := float64(req.Days)
	travelers := float64(req.Travelers)
	lodgingUSD := nightly * float64(rooms) * days

	totalUSD := lodgingUSD
	catUSD := make(map[domain.Category]float64, len(dailyUSD))
	for c, v := range dailyUSD {
		catUSD[c] = v * travelers * days
		totalUSD += catUSD[c]
	}

	breakdown := domain.Breakdown{
		Lodging:   lodgingUSD * rate,
		Food:      catUSD[domain.CategoryFood] * rate,
		Transport: catUSD[domain.CategoryTransport] * rate,
		// Nightlife folds into activities in the reported breakdown.
		Activities: (catUSD[domain.CategoryActivities] + catUSD[domain.CategoryNightlife]) * rate,
		Misc:       catUSD[domain.CategoryMisc] * rate,
	}
	total := totalUSD * rate
	margin := marginByConfidence[res.Index.Confidence]

	result := domain.EstimateResult{
		Destination:    req.Destination,
		Currency:       currency,
		Total:          total,
		DailyPerPerson: total / days / travelers,
		RangeLow:       total * (1 - margin),
		RangeHigh:      total * (1 + margin),
		Breakdown:      breakdown,
		Confidence:     res.Index.Confidence,
	}

	if e.holidays != nil && req.Start != nil && res.CountryCode != "" {
		result.Holidays = e.tripHolidays(ctx, res.CountryCode, *req.Start, req.Days, tr)
	}

	tr.OK("engine", "estimate complete: %.0f %s over %d day(s), confidence %s",
		total, currency, req.Days, res.Index.Confidence)
	result.Audit = tr.Entries()
	observability.ObserveEstimate(string(res.Index.Confidence))
	return result, nil
}

// tripHolidays collects public holidays inside [start, start+days). It is
// advisory context only; any failure is recorded and otherwise ignored.
func (e *Estimator) tripHolidays(ctx context.Context, cc string, start time.Time, days int, tr *domain.Trail) []domain.Holiday {
	// Compare on UTC dates; holiday feeds carry no time of day.
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days)
	years := []int{start.Year()}
	if end.Year() != start.Year() {
		years = append(years, end.Year())
	}

	var out []domain.Holiday
	for _, y := range years {
		hs, err := e.holidays.PublicHolidays(ctx, cc, y)
		if err != nil {
			tr.Info("holidays", "holiday lookup for %s/%d failed: %v", cc, y, err)
			return out
		}
		for _, h := range hs {
			if !h.Date.Before(start) && h.Date.Before(end) {
				out = append(out, h)
			}
		}
	}
	if len(out) > 0 {
		tr.Info("holidays", "%d public holiday(s) during the trip; expect demand pressure", len(out))
	}
	return out
}
