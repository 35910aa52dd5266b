package fx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"takeitiz/internal/adapters/fx"
)

func TestERAPI_Rates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest/USD" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","rates":{"brl":5.41,"EUR":0.92}}`))
	}))
	defer ts.Close()

	cl := fx.NewERAPI(ts.URL, 2*time.Second)
	rates, err := cl.Rates(context.Background(), "usd")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rates["BRL"] != 5.41 {
		t.Fatalf("want upper-cased BRL 5.41, got %v", rates)
	}
}

func TestERAPI_ErrorResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error"}`))
	}))
	defer ts.Close()

	cl := fx.NewERAPI(ts.URL, 2*time.Second)
	if _, err := cl.Rates(context.Background(), "USD"); err == nil {
		t.Fatal("expected error for non-success result")
	}
}

func TestERAPI_ServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cl := fx.NewERAPI(ts.URL, 2*time.Second)
	if _, err := cl.Rates(context.Background(), "USD"); err == nil {
		t.Fatal("expected error for 503")
	}
}

func TestFrankfurter_Rates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("base"); got != "USD" {
			t.Errorf("base query = %q", got)
		}
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.93}}`))
	}))
	defer ts.Close()

	cl := fx.NewFrankfurter(ts.URL, 2*time.Second)
	rates, err := cl.Rates(context.Background(), "USD")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rates["EUR"] != 0.93 {
		t.Fatalf("unexpected rates: %v", rates)
	}
}

func TestFrankfurter_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.93}}`))
	}))
	defer ts.Close()

	cl := fx.NewFrankfurter(ts.URL, 50*time.Millisecond)
	if _, err := cl.Rates(context.Background(), "USD"); err == nil {
		t.Fatal("expected timeout error")
	}
}
