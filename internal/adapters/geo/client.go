// Package geo wraps Nominatim forward geocoding. It is only ever used as a
// last-resort destination fallback, so failures are cheap: the resolver
// swallows them and moves on.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"takeitiz/internal/adapters/observability"
	"takeitiz/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a Nominatim client. The limiter enforces the usage policy of
// one request per second regardless of caller concurrency.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(1), 1),
	}
}

type searchHit struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Display string `json:"display_name"`
	Address struct {
		CountryCode string `json:"country_code"`
		State       string `json:"state"`
	} `json:"address"`
}

func (c *Client) Geocode(ctx context.Context, place string) (domain.GeoResult, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.GeoResult{}, err
	}

	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain.GeoResult{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "takeitiz/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nominatim", "search", 0, time.Since(start))
		if ctx.Err() != nil {
			return domain.GeoResult{}, ctx.Err()
		}
		return domain.GeoResult{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nominatim", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.GeoResult{}, fmt.Errorf("geo: nominatim returned status %d", resp.StatusCode)
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return domain.GeoResult{}, err
	}
	if len(hits) == 0 {
		return domain.GeoResult{Found: false}, nil
	}

	h := hits[0]
	lat, _ := strconv.ParseFloat(h.Lat, 64)
	lon, _ := strconv.ParseFloat(h.Lon, 64)
	return domain.GeoResult{
		Found:       true,
		Lat:         lat,
		Lon:         lon,
		CountryCode: strings.ToUpper(h.Address.CountryCode),
		Subdivision: h.Address.State,
		DisplayName: h.Display,
	}, nil
}
