package exportcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communityworks/grantledger/internal/export"
	"github.com/communityworks/grantledger/internal/funder"
	"github.com/communityworks/grantledger/internal/ledger"
)

type Handler struct {
	exportSvc *export.Service
	ledgerSvc *ledger.Service
	funderSvc *funder.Service
}

func NewHandler(exportSvc *export.Service, ledgerSvc *ledger.Service, funderSvc *funder.Service) *Handler {
	return &Handler{exportSvc: exportSvc, ledgerSvc: ledgerSvc, funderSvc: funderSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/ledger.csv", h.ledgerCSV)
	r.Get("/funders.csv", h.fundersCSV)
}

func (h *Handler) ledgerCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledgerSvc.List(r.Context(), ledger.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, "ledger.csv", h.exportSvc.Ledger(records))
}

func (h *Handler) fundersCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledgerSvc.List(r.Context(), ledger.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, "funders.csv", h.exportSvc.FunderSummaries(h.funderSvc.Summarize(records)))
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	_, _ = w.Write([]byte(body))
}
