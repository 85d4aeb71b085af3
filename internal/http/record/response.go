package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/communityworks/grantledger/internal/ledger"
)

type recordResponse struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Amount          int64          `json:"amount"`
	MainCategory    string         `json:"main_category"`
	SubCategory     string         `json:"sub_category,omitempty"`
	Vendor          string         `json:"vendor,omitempty"`
	Description     string         `json:"description,omitempty"`
	ReferenceNumber string         `json:"reference_number,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	PayDate         string         `json:"pay_date"`
	Quarter         ledger.Quarter `json:"quarter"`
	Year            int            `json:"year"`
	Funder          string         `json:"funder,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func toResponse(rec *ledger.Record) recordResponse {
	return recordResponse{
		ID:              rec.ID,
		Name:            rec.Name,
		Amount:          rec.Amount,
		MainCategory:    rec.MainCategory,
		SubCategory:     rec.SubCategory,
		Vendor:          rec.Vendor,
		Description:     rec.Description,
		ReferenceNumber: rec.ReferenceNumber,
		PaymentMethod:   rec.PaymentMethod,
		PayDate:         rec.PayDate,
		Quarter:         rec.Quarter,
		Year:            rec.Year,
		Funder:          rec.Funder,
		CreatedAt:       rec.CreatedAt,
	}
}

func toResponseList(recs []*ledger.Record) []recordResponse {
	resp := make([]recordResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
