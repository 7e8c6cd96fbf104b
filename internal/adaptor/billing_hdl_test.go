package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type billingServiceStub struct {
	catalog         []response.ServiceResponse
	quote           *response.QuoteResponse
	quoteErr        error
	receipt         *response.ReceiptResponse
	receiptErr      error
	payments        []response.PaymentResponse
	lastReceiptReq  *request.GenerateReceiptRequest
	lastQuotedName  string
}

func (s *billingServiceStub) GetCatalog() []response.ServiceResponse { return s.catalog }

func (s *billingServiceStub) CalculateTotal(_ context.Context, patientName string) (*response.QuoteResponse, error) {
	s.lastQuotedName = patientName
	return s.quote, s.quoteErr
}

func (s *billingServiceStub) GenerateReceipt(_ context.Context, req *request.GenerateReceiptRequest) (*response.ReceiptResponse, error) {
	s.lastReceiptReq = req
	return s.receipt, s.receiptErr
}

func (s *billingServiceStub) ListPayments(_ context.Context) ([]response.PaymentResponse, error) {
	return s.payments, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestGetCatalogHandler(t *testing.T) {
	stub := &billingServiceStub{
		catalog: []response.ServiceResponse{{Name: "Dental Cleaning", Price: "500.00"}},
	}
	h := NewBillingHandler(stub, zap.NewNop())

	rec := httptest.NewRecorder()
	h.GetCatalog(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Status {
		t.Error("envelope status = false, want true")
	}
}

func TestCalculateTotalHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		stub := &billingServiceStub{
			quote: &response.QuoteResponse{PatientName: "Maria Santos", FinalTotal: "1040.00"},
		}
		h := NewBillingHandler(stub, zap.NewNop())

		rec := httptest.NewRecorder()
		h.CalculateTotal(rec, httptest.NewRequest(http.MethodGet,
			"/api/billing/total?patient=Maria+Santos", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.lastQuotedName != "Maria Santos" {
			t.Errorf("quoted name = %q, want Maria Santos", stub.lastQuotedName)
		}
	})

	t.Run("missing patient param", func(t *testing.T) {
		h := NewBillingHandler(&billingServiceStub{}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.CalculateTotal(rec, httptest.NewRequest(http.MethodGet, "/api/billing/total", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("no appointments maps to 404", func(t *testing.T) {
		stub := &billingServiceStub{
			quoteErr: fmt.Errorf("no appointments found for patient Ghost"),
		}
		h := NewBillingHandler(stub, zap.NewNop())

		rec := httptest.NewRecorder()
		h.CalculateTotal(rec, httptest.NewRequest(http.MethodGet,
			"/api/billing/total?patient=Ghost", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestGenerateReceiptHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &billingServiceStub{
			receipt: &response.ReceiptResponse{ReceiptText: "receipt"},
		}
		h := NewBillingHandler(stub, zap.NewNop())

		body := strings.NewReader(`{"patient_name":"Maria Santos","method":"GCash"}`)
		rec := httptest.NewRecorder()
		h.GenerateReceipt(rec, httptest.NewRequest(http.MethodPost, "/api/billing/receipt", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if stub.lastReceiptReq == nil || stub.lastReceiptReq.Method != "GCash" {
			t.Error("request not forwarded to the service")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewBillingHandler(&billingServiceStub{}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.GenerateReceipt(rec, httptest.NewRequest(http.MethodPost,
			"/api/billing/receipt", strings.NewReader("{")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unsupported method rejected before the service", func(t *testing.T) {
		stub := &billingServiceStub{}
		h := NewBillingHandler(stub, zap.NewNop())

		body := strings.NewReader(`{"patient_name":"Maria Santos","method":"Cheque"}`)
		rec := httptest.NewRecorder()
		h.GenerateReceipt(rec, httptest.NewRequest(http.MethodPost, "/api/billing/receipt", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if stub.lastReceiptReq != nil {
			t.Error("service called despite validation failure")
		}
	})
}

func TestListPaymentsHandler(t *testing.T) {
	stub := &billingServiceStub{
		payments: []response.PaymentResponse{{Amount: "1040.00"}},
	}

	r := chi.NewRouter()
	r.Get("/api/admin/payments", NewBillingHandler(stub, zap.NewNop()).ListPayments)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Data == nil {
		t.Error("expected payment data in the envelope")
	}
}
