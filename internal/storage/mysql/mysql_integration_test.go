//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"takeitiz/internal/domain"
	mysqlrepo "takeitiz/internal/storage/mysql"
)

func TestRepo_MySQL_QuoteHistory(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=takeitiz",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "takeitiz")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(mysqlrepo.CreateTableSQL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange: two quotes for the same pair, the newer one wins.
	older := domain.FXQuote{
		Base: "USD", Quote: "BRL", Rate: 5.35,
		Source: "er-api", ResolvedAt: time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Second),
	}
	newer := domain.FXQuote{
		Base: "USD", Quote: "BRL", Rate: 5.55,
		Source: "frankfurter", ResolvedAt: time.Now().UTC().Add(-1 * time.Hour).Truncate(time.Second),
	}
	for _, q := range []domain.FXQuote{older, newer} {
		if err := repo.SaveQuote(ctx, q); err != nil {
			t.Fatalf("SaveQuote(%+v): %v", q, err)
		}
	}

	got, err := repo.LatestQuote(ctx, "usd", "brl")
	if err != nil {
		t.Fatalf("LatestQuote: %v", err)
	}
	if got.Rate != 5.55 || got.Source != "frankfurter" {
		t.Fatalf("latest quote = %+v, want newer row", got)
	}

	list, err := repo.ListQuotes(ctx, "USD", "BRL", time.Now().UTC().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListQuotes returned %d rows, want 2", len(list))
	}
	if !list[0].ResolvedAt.Before(list[1].ResolvedAt) {
		t.Fatalf("ListQuotes not in chronological order: %v then %v", list[0].ResolvedAt, list[1].ResolvedAt)
	}

	// Narrower window excludes the older quote.
	list, err = repo.ListQuotes(ctx, "USD", "BRL", time.Now().UTC().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("ListQuotes(narrow): %v", err)
	}
	if len(list) != 1 || list[0].Rate != 5.55 {
		t.Fatalf("narrow window = %+v, want only the newer quote", list)
	}

	if _, err := repo.LatestQuote(ctx, "USD", "JPY"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LatestQuote for unknown pair: err=%v, want ErrNotFound", err)
	}
}
