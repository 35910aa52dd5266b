package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "takeitiz/internal/adapters/redis"
	"takeitiz/internal/domain"
)

func TestCache_RoundTripAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	q := domain.FXQuote{Base: "USD", Quote: "BRL", Rate: 5.41, Source: "er-api", ResolvedAt: time.Now().UTC().Truncate(time.Second)}
	if err := c.Set(ctx, "fx:USD:BRL", q, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.FXQuote
	ok, err := c.Get(ctx, "fx:USD:BRL", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Rate != 5.41 || got.Source != "er-api" {
		t.Fatalf("unexpected quote: %+v", got)
	}

	// Entries expire strictly by age.
	mr.FastForward(61 * time.Second)
	ok, err = c.Get(ctx, "fx:USD:BRL", &got)
	if err != nil {
		t.Fatalf("get after ttl: %v", err)
	}
	if ok {
		t.Fatal("expected miss after TTL expiry")
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)

	var got domain.FXQuote
	ok, err := c.Get(context.Background(), "fx:USD:JPY", &got)
	if err != nil || ok {
		t.Fatalf("want clean miss, got ok=%v err=%v", ok, err)
	}
}
