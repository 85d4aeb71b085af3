package funder

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communityworks/grantledger/internal/funder"
	"github.com/communityworks/grantledger/internal/ledger"
)

type Handler struct {
	funderSvc *funder.Service
	ledgerSvc *ledger.Service
}

func NewHandler(funderSvc *funder.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{funderSvc: funderSvc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summaries)
}

type summaryResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Approved     int64         `json:"approved"`
	Spent        int64         `json:"spent"`
	Remaining    int64         `json:"remaining"`
	PercentUsed  float64       `json:"percent_used"`
	Transactions int           `json:"transactions"`
	Status       funder.Status `json:"status"`
}

type totalsResponse struct {
	Approved     int64   `json:"approved"`
	Spent        int64   `json:"spent"`
	Remaining    int64   `json:"remaining"`
	PercentUsed  float64 `json:"percent_used"`
	Transactions int     `json:"transactions"`
}

type summariesResponse struct {
	Funders []summaryResponse `json:"funders"`
	Totals  totalsResponse    `json:"totals"`
}

func (h *Handler) summaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledgerSvc.List(r.Context(), ledger.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := h.funderSvc.Summarize(records)

	resp := summariesResponse{Funders: make([]summaryResponse, 0, len(summaries))}

	for _, s := range summaries {
		resp.Funders = append(resp.Funders, summaryResponse{
			ID:           s.ID,
			Name:         s.Name,
			Approved:     s.Approved,
			Spent:        s.Spent,
			Remaining:    s.Remaining,
			PercentUsed:  s.PercentUsed,
			Transactions: s.Transactions,
			Status:       s.Status,
		})
	}

	t := funder.Total(summaries)
	resp.Totals = totalsResponse{
		Approved:     t.Approved,
		Spent:        t.Spent,
		Remaining:    t.Remaining,
		PercentUsed:  t.PercentUsed,
		Transactions: t.Transactions,
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
