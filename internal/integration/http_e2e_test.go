//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"takeitiz/internal/adapters/fx"
	"takeitiz/internal/adapters/geo"
	"takeitiz/internal/adapters/holidays"
	server "takeitiz/internal/adapters/http_server"
	redisad "takeitiz/internal/adapters/redis"
	"takeitiz/internal/app"
)

type estimateBody struct {
	Destination    string  `json:"destination"`
	Currency       string  `json:"currency"`
	Total          float64 `json:"total"`
	DailyPerPerson float64 `json:"daily_per_person"`
	RangeLow       float64 `json:"range_low"`
	RangeHigh      float64 `json:"range_high"`
	Breakdown      struct {
		Lodging    float64 `json:"lodging"`
		Food       float64 `json:"food"`
		Transport  float64 `json:"transport"`
		Activities float64 `json:"activities"`
		Misc       float64 `json:"misc"`
	} `json:"breakdown"`
	Confidence string `json:"confidence"`
	Holidays   []struct {
		Date string `json:"date"`
		Name string `json:"name"`
	} `json:"holidays"`
	Audit []struct {
		Status  string `json:"status"`
		Source  string `json:"source"`
		Message string `json:"message"`
	} `json:"audit"`
}

// Spins up fake upstreams plus miniredis and runs real requests through
// the chi router, clients and services exactly as cmd/api wires them.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	fxSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest/USD" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"result":"success","rates":{"USD":1,"BRL":5.0,"EUR":0.95,"GBP":0.80}}`)
	}))
	t.Cleanup(fxSrv.Close)

	backupSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(backupSrv.Close)

	geoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]") // every curated destination should resolve before geocoding
	}))
	t.Cleanup(geoSrv.Close)

	holSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PublicHolidays/2026/BR" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		fmt.Fprint(w, `[
			{"date":"2026-02-17","localName":"Carnaval","name":"Carnival"},
			{"date":"2026-04-21","localName":"Tiradentes","name":"Tiradentes Day"}
		]`)
	}))
	t.Cleanup(holSrv.Close)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	rates := app.NewRateService(
		fx.NewERAPI(fxSrv.URL, 2*time.Second),
		fx.NewFrankfurter(backupSrv.URL, 2*time.Second),
		cache,
		app.RateConfig{
			TouristSpread:  1.045,
			CashCurrencies: []string{"BRL", "EUR", "GBP"},
			FallbackRates:  map[string]float64{"BRL": 6.00, "EUR": 0.95, "GBP": 0.80},
		},
	)
	resolver := app.NewDestinationResolver(geo.New(geoSrv.URL, 2*time.Second))
	est := app.NewEstimator(rates, resolver).
		WithHolidays(holidays.New(holSrv.URL, 2*time.Second))

	srv := server.New()
	srv.MountHandlers(&server.Handlers{E: est})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getEstimate(t *testing.T, ts *httptest.Server, query url.Values) (*http.Response, estimateBody) {
	t.Helper()
	res, err := http.Get(ts.URL + "/v1/estimate?" + query.Encode())
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	var body estimateBody
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res, body
}

func TestHTTP_EndToEnd_EstimateBRL(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{}
	q.Set("destination", "rio de janeiro")
	q.Set("days", "5")
	q.Set("travelers", "2")
	q.Set("style", "moderate")
	q.Set("vibe", "mixed")
	q.Set("currency", "BRL")

	res, body := getEstimate(t, ts, q)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	// Live 5.0 with the tourist spread applied; no date means a neutral
	// seasonal factor, so the USD total converts straight through.
	wantTotal := 1720 * 5.0 * 1.045
	if math.Abs(body.Total-wantTotal) > 0.01 {
		t.Fatalf("total = %.2f, want %.2f", body.Total, wantTotal)
	}
	if body.Currency != "BRL" || body.Confidence != "high" {
		t.Fatalf("currency/confidence = %s/%s", body.Currency, body.Confidence)
	}
	sum := body.Breakdown.Lodging + body.Breakdown.Food + body.Breakdown.Transport +
		body.Breakdown.Activities + body.Breakdown.Misc
	if math.Abs(sum-body.Total) > 0.01 {
		t.Fatalf("breakdown sums to %.2f, total %.2f", sum, body.Total)
	}
	if body.RangeLow >= body.Total || body.RangeHigh <= body.Total {
		t.Fatalf("range [%.2f, %.2f] does not bracket total %.2f", body.RangeLow, body.RangeHigh, body.Total)
	}
	if len(body.Audit) == 0 {
		t.Fatal("audit trail empty")
	}
}

func TestHTTP_EndToEnd_HolidayOverlap(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{}
	q.Set("destination", "rio de janeiro")
	q.Set("days", "7")
	q.Set("travelers", "2")
	q.Set("style", "comfort")
	q.Set("vibe", "party")
	q.Set("currency", "USD")
	q.Set("start", "2026-02-14")

	res, body := getEstimate(t, ts, q)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var names []string
	for _, h := range body.Holidays {
		names = append(names, h.Name)
	}
	if len(names) != 1 || names[0] != "Carnaval" {
		t.Fatalf("holidays = %v, want only Carnaval inside the trip window", names)
	}
}

func TestHTTP_EndToEnd_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	cases := []url.Values{
		{"destination": {"rio"}, "days": {"abc"}},
		{"destination": {"rio"}, "days": {"0"}},
		{"destination": {""}, "days": {"5"}},
		{"destination": {"rio"}, "days": {"5"}, "travelers": {"0"}},
		{"destination": {"rio"}, "days": {"5"}, "start": {"14-02-2026"}},
	}
	for _, q := range cases {
		res, _ := getEstimate(t, ts, q)
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("query %v: status %d, want 400", q.Encode(), res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("query %v: content-type %q", q.Encode(), ct)
		}
	}
}

func TestHTTP_EndToEnd_Healthz(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}
