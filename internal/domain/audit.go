package domain

import "fmt"

type AuditStatus string

const (
	AuditOK   AuditStatus = "OK"
	AuditInfo AuditStatus = "INFO"
	AuditWarn AuditStatus = "WARN"
)

// AuditEntry is one decision made during estimation.
type AuditEntry struct {
	Source  string      `json:"source"`
	Message string      `json:"message"`
	Status  AuditStatus `json:"status"`
}

// Trail is a request-scoped, append-only audit accumulator. Each estimate
// call owns its own Trail; it is never stored on a shared component.
type Trail struct {
	entries []AuditEntry
}

func NewTrail() *Trail { return &Trail{} }

func (t *Trail) append(source string, status AuditStatus, format string, args ...any) {
	t.entries = append(t.entries, AuditEntry{
		Source:  source,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	})
}

func (t *Trail) OK(source, format string, args ...any) {
	t.append(source, AuditOK, format, args...)
}

func (t *Trail) Info(source, format string, args ...any) {
	t.append(source, AuditInfo, format, args...)
}

func (t *Trail) Warn(source, format string, args ...any) {
	t.append(source, AuditWarn, format, args...)
}

// Entries returns a copy so callers cannot mutate the trail after the fact.
func (t *Trail) Entries() []AuditEntry {
	out := make([]AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
