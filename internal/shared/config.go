package shared

import (
	"os"
	"strconv"
	"strings"
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

	FXPrimaryBase   string
	FXSecondaryBase string
	GeocoderBase    string
	HolidayBase     string

	FXTimeout      time.Duration
	GeocodeTimeout time.Duration
	FXCacheTTL     time.Duration

	// TouristSpread is the cash-exchange markup applied to live quotes
	// when converting into one of CashCurrencies.
	TouristSpread  float64
	CashCurrencies []string

	// FXFallbackRates is the static last-resort table, keyed by currency
	// code, each value a USD->code rate.
	FXFallbackRates map[string]float64
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
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		MySQLDSN:        env("MYSQL_DSN", ""),
		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		FXPrimaryBase:   env("FX_PRIMARY_BASE_URL", "https://open.er-api.com/v6"),
		FXSecondaryBase: env("FX_SECONDARY_BASE_URL", "https://api.frankfurter.dev/v1"),
		GeocoderBase:    env("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		HolidayBase:     env("HOLIDAY_BASE_URL", "https://date.nager.at/api/v3"),
		FXTimeout:       time.Duration(atoi("FX_TIMEOUT_SECONDS", 5)) * time.Second,
		GeocodeTimeout:  time.Duration(atoi("GEOCODE_TIMEOUT_SECONDS", 8)) * time.Second,
		FXCacheTTL:      time.Duration(atoi("FX_CACHE_TTL_SECONDS", 1800)) * time.Second,
		TouristSpread:   atof("FX_TOURIST_SPREAD", 1.045),
		CashCurrencies:  splitCSV(env("FX_CASH_CURRENCIES", "BRL,EUR,GBP,MXN,ARS,THB")),
		FXFallbackRates: map[string]float64{
			"BRL": 6.00,
			"EUR": 0.95,
			"GBP": 0.80,
		},
	}
	if c.MySQLDSN == "" {
		log.Info().Msg("MYSQL_DSN empty; FX quote history disabled")
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR empty; using in-process FX cache")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(strings.ToUpper(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
