package holidays_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"takeitiz/internal/adapters/holidays"
)

func TestPublicHolidays(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PublicHolidays/2026/BR" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"date":"2026-02-17","localName":"Carnaval","name":"Carnival"},
			{"date":"2026-04-21","localName":"","name":"Tiradentes"},
			{"date":"bogus","localName":"ignored","name":"ignored"}
		]`))
	}))
	defer ts.Close()

	cl := holidays.New(ts.URL, 2*time.Second)
	got, err := cl.PublicHolidays(context.Background(), "br", 2026)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 parseable holidays, got %d", len(got))
	}
	if got[0].Name != "Carnaval" {
		t.Fatalf("localName preferred: got %q", got[0].Name)
	}
	if got[1].Name != "Tiradentes" {
		t.Fatalf("name fallback: got %q", got[1].Name)
	}
}

func TestPublicHolidays_UncoveredCountry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	cl := holidays.New(ts.URL, 2*time.Second)
	got, err := cl.PublicHolidays(context.Background(), "XX", 2026)
	if err != nil || got != nil {
		t.Fatalf("204 should yield nil,nil; got %v, %v", got, err)
	}
}
