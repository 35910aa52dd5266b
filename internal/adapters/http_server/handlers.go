// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"takeitiz/internal/app"
	"takeitiz/internal/domain"
)

type Handlers struct{ E *app.Estimator }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/estimate", h.estimate)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// estimate maps query parameters onto an EstimateRequest. Enum-ish inputs
// (style, vibe, currency) are passed through as-is: the engine degrades
// unknown values to documented defaults, so only structural problems
// (bad numbers, bad dates) are client errors here.
func (h *Handlers) estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid days", "days must be an integer")
		return
	}
	travelers := 1
	if ts := q.Get("travelers"); ts != "" {
		travelers, err = strconv.Atoi(ts)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid travelers", "travelers must be an integer")
			return
		}
	}

	req := domain.EstimateRequest{
		Destination: q.Get("destination"),
		Days:        days,
		Travelers:   travelers,
		Style:       domain.Style(q.Get("style")),
		Vibe:        domain.Vibe(q.Get("vibe")),
		Currency:    q.Get("currency"),
	}
	if ds := q.Get("start"); ds != "" {
		start, err := time.Parse("2006-01-02", ds)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid start", "start must be YYYY-MM-DD")
			return
		}
		req.Start = &start
	}

	resp, err := h.E.Estimate(r.Context(), req)
	if err != nil {
		// Validation errors are the only errors the engine returns.
		if errors.Is(err, app.ErrEmptyDestination) || errors.Is(err, app.ErrInvalidDays) || errors.Is(err, app.ErrInvalidTravelers) {
			writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Estimation failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write estimate body")
	}
}
