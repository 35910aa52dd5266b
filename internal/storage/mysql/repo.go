package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"takeitiz/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// SaveQuote appends one resolved rate. History is append-only; the
// latest row per pair is what LatestQuote serves back.
func (r *Repo) SaveQuote(ctx context.Context, q domain.FXQuote) error {
	_, err := r.db.ExecContext(ctx, insertQuoteSQL,
		strings.ToUpper(q.Base),
		strings.ToUpper(q.Quote),
		q.Rate,
		q.Source,
		q.ResolvedAt.UTC(),
	)
	return err
}

func (r *Repo) LatestQuote(ctx context.Context, base, quote string) (domain.FXQuote, error) {
	row := r.db.QueryRowContext(ctx, latestQuoteSQL,
		strings.ToUpper(base), strings.ToUpper(quote))

	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return domain.FXQuote{}, domain.ErrNotFound
	}
	return q, err
}

func (r *Repo) ListQuotes(ctx context.Context, base, quote string, since time.Time) ([]domain.FXQuote, error) {
	rows, err := r.db.QueryContext(ctx, listQuotesSQL,
		strings.ToUpper(base), strings.ToUpper(quote), since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FXQuote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

type scanner interface{ Scan(dest ...any) error }

func scanQuote(s scanner) (domain.FXQuote, error) {
	var q domain.FXQuote
	var resolvedAt sql.NullTime
	if err := s.Scan(&q.Base, &q.Quote, &q.Rate, &q.Source, &resolvedAt); err != nil {
		return domain.FXQuote{}, err
	}
	if resolvedAt.Valid {
		q.ResolvedAt = resolvedAt.Time
	}
	return q, nil
}
