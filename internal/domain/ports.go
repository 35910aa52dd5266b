package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by lookups when the record does not exist.
var ErrNotFound = errors.New("not found")

// RateSource is one live FX quote provider. Rates returns every known
// quote for the given base currency, keyed by upper-case currency code.
type RateSource interface {
	Name() string
	Rates(ctx context.Context, base string) (map[string]float64, error)
}

// Geocoder forward-geocodes a free-text place name. A miss is reported as
// Found=false, not as an error; errors mean the lookup itself failed.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (GeoResult, error)
}

// HolidaySource lists a country's public holidays for one year.
type HolidaySource interface {
	PublicHolidays(ctx context.Context, countryCode string, year int) ([]Holiday, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// QuoteHistory records resolved FX quotes and serves the most recent one
// back as a fallback when every live source is down.
type QuoteHistory interface {
	SaveQuote(ctx context.Context, q FXQuote) error
	LatestQuote(ctx context.Context, base, quote string) (FXQuote, error)
	ListQuotes(ctx context.Context, base, quote string, since time.Time) ([]FXQuote, error)
}
