package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communityworks/grantledger/internal/importer"
	"github.com/communityworks/grantledger/internal/ledger"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{importSvc: importSvc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int              `json:"imported"`
	Outcome  importer.Outcome `json:"outcome"`
	Message  string           `json:"message"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, summary := h.importSvc.Import(header.Filename, file)

	// Parsed rows are appended to the existing collection; an import never
	// replaces what is already there.
	if summary.Outcome == importer.OutcomeSuccess {
		if _, err := h.ledgerSvc.ImportBatch(r.Context(), params); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	status := http.StatusCreated

	switch summary.Outcome {
	case importer.OutcomeWarning:
		status = http.StatusOK
	case importer.OutcomeError:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := importResponse{
		Imported: summary.Imported,
		Outcome:  summary.Outcome,
		Message:  summary.Message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
