package mysql

const insertQuoteSQL = `
INSERT INTO fx_quotes
  (base, quote, rate, source, resolved_at)
VALUES
  (?, ?, ?, ?, ?)
`

const latestQuoteSQL = `
SELECT base, quote, rate, source, resolved_at
FROM fx_quotes
WHERE base = ? AND quote = ?
ORDER BY resolved_at DESC, id DESC
LIMIT 1
`

const listQuotesSQL = `
SELECT base, quote, rate, source, resolved_at
FROM fx_quotes
WHERE base = ? AND quote = ? AND resolved_at >= ?
ORDER BY resolved_at ASC, id ASC
`

// CreateTableSQL is the quote-history schema; the integration test and
// deploy scripts both run it.
const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS fx_quotes (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  base        CHAR(3)         NOT NULL,
  quote       CHAR(3)         NOT NULL,
  rate        DOUBLE          NOT NULL,
  source      VARCHAR(32)     NOT NULL,
  resolved_at TIMESTAMP       NOT NULL,
  created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  KEY idx_pair_resolved (base, quote, resolved_at)
)
`
