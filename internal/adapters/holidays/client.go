// Package holidays wraps the Nager.Date public-holiday API. Holiday overlap
// is advisory only; the estimator treats every failure here as best-effort.
package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"takeitiz/internal/adapters/observability"
	"takeitiz/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
}

func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

type apiHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

func (c *Client) PublicHolidays(ctx context.Context, countryCode string, year int) ([]domain.Holiday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.base, year, strings.ToUpper(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "takeitiz/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nager", "public-holidays", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nager", "public-holidays", resp.StatusCode, time.Since(start))

	// Nager returns 204 for countries it does not cover.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holidays: nager returned status %d", resp.StatusCode)
	}

	var raw []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	out := make([]domain.Holiday, 0, len(raw))
	for _, h := range raw {
		d, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		name := h.LocalName
		if name == "" {
			name = h.Name
		}
		out = append(out, domain.Holiday{Date: d, Name: name})
	}
	return out, nil
}
