package record

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/communityworks/grantledger/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
	r.Delete("/", h.clear)
}

type createRecordRequest struct {
	Name            string `json:"name"`
	Amount          int64  `json:"amount"` // cents
	MainCategory    string `json:"main_category"`
	SubCategory     string `json:"sub_category"`
	Vendor          string `json:"vendor"`
	Description     string `json:"description"`
	ReferenceNumber string `json:"reference_number"`
	PaymentMethod   string `json:"payment_method"`
	PayDate         string `json:"pay_date"`
	Funder          string `json:"funder"`
	Year            int    `json:"year,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), ledger.CreateParams{
		Name:            req.Name,
		Amount:          req.Amount,
		MainCategory:    req.MainCategory,
		SubCategory:     req.SubCategory,
		Vendor:          req.Vendor,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		PaymentMethod:   req.PaymentMethod,
		PayDate:         req.PayDate,
		Funder:          req.Funder,
		Year:            req.Year,
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), filterFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type clearResponse struct {
	Removed int `json:"removed"`
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Clear(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(clearResponse{Removed: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func filterFromQuery(r *http.Request) ledger.ListFilter {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("year"); s != "" {
		if y, err := strconv.Atoi(s); err == nil {
			filter.Year = &y
		}
	}

	if s := r.URL.Query().Get("funder"); s != "" {
		filter.Funder = &s
	}

	if s := r.URL.Query().Get("quarter"); s != "" {
		q := ledger.Quarter(s)
		filter.Quarter = &q
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.MainCategory = &s
	}

	return filter
}
