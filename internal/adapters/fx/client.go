// Package fx provides the live FX quote sources. Each client is a thin,
// timeout-bounded wrapper around one provider; retrying is left to the
// converter's fallback chain rather than done in-client.
package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"takeitiz/internal/adapters/observability"
)

var ErrNoRates = errors.New("fx: provider returned no rates")

// ERAPIClient reads open.er-api.com (the primary source).
type ERAPIClient struct {
	base string
	hc   *http.Client
}

func NewERAPI(base string, timeout time.Duration) *ERAPIClient {
	return &ERAPIClient{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

func (c *ERAPIClient) Name() string { return "er-api" }

func (c *ERAPIClient) Rates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest/%s", c.base, strings.ToUpper(base))

	var body struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := getJSON(ctx, c.hc, c.Name(), url, &body); err != nil {
		return nil, err
	}
	if body.Result != "success" || len(body.Rates) == 0 {
		return nil, ErrNoRates
	}
	return upperKeys(body.Rates), nil
}

// FrankfurterClient reads api.frankfurter.dev (the backup source).
type FrankfurterClient struct {
	base string
	hc   *http.Client
}

func NewFrankfurter(base string, timeout time.Duration) *FrankfurterClient {
	return &FrankfurterClient{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

func (c *FrankfurterClient) Name() string { return "frankfurter" }

func (c *FrankfurterClient) Rates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest?base=%s", c.base, strings.ToUpper(base))

	var body struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := getJSON(ctx, c.hc, c.Name(), url, &body); err != nil {
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, ErrNoRates
	}
	return upperKeys(body.Rates), nil
}

func getJSON(ctx context.Context, hc *http.Client, service, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "takeitiz/1.0")

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, "latest", 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, "latest", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fx: %s returned status %d", service, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func upperKeys(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[strings.ToUpper(k)] = v
	}
	return out
}
