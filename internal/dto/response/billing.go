package response

import (
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/billing"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
)

type ServiceResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type LineItemResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// QuoteResponse mirrors the calculate-total result. Amounts rendered as
// fixed two-decimal strings so callers never see float representations.
type QuoteResponse struct {
	AppointmentID   string                 `json:"appointment_id"`
	PatientName     string                 `json:"patient_name"`
	DemographicType entity.DemographicType `json:"demographic_type"`
	BaseTotal       string                 `json:"base_total"`
	DiscountRate    string                 `json:"discount_rate"`
	DiscountAmount  string                 `json:"discount_amount"`
	FinalTotal      string                 `json:"final_total"`
	LineItems       []LineItemResponse     `json:"line_items"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	AppointmentID string               `json:"appointment_id"`
	Amount        string               `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	DatePaid      time.Time            `json:"date_paid"`
}

type ReceiptResponse struct {
	ReceiptText string          `json:"receipt_text"`
	Payment     PaymentResponse `json:"payment"`
}

func ServiceToResponse(service billing.Service) ServiceResponse {
	return ServiceResponse{
		Name:  service.Name,
		Price: service.Price.StringFixed(2),
	}
}

func QuoteToResponse(appointment *entity.Appointment, demographic entity.DemographicType, quote billing.Quote) *QuoteResponse {
	items := make([]LineItemResponse, 0, len(quote.LineItems))
	for _, item := range quote.LineItems {
		items = append(items, LineItemResponse{
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
		})
	}

	return &QuoteResponse{
		AppointmentID:   appointment.ID.String(),
		PatientName:     appointment.PatientName,
		DemographicType: demographic,
		BaseTotal:       quote.BaseTotal.StringFixed(2),
		DiscountRate:    quote.DiscountRate.StringFixed(2),
		DiscountAmount:  quote.DiscountAmount.StringFixed(2),
		FinalTotal:      quote.FinalTotal.StringFixed(2),
		LineItems:       items,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		AppointmentID: payment.AppointmentID.String(),
		Amount:        payment.Amount.StringFixed(2),
		Method:        payment.Method,
		DatePaid:      payment.DatePaid,
	}
}
