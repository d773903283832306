package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

func TestEstimateMortgageHandler_OK(t *testing.T) {
	handler := NewMortgageHandler(service.NewMortgageService(zap.NewNop()))

	body := `{"price": 1500000, "downpayment_percent": 25, "interest_rate": 3.5, "tenure_years": 30}`
	req := httptest.NewRequest(http.MethodPost, "/calc/mortgage", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.EstimateMortgage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result domain.MortgageResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.LoanAmount != 1_125_000 {
		t.Errorf("loan amount = %.2f, want 1125000", result.LoanAmount)
	}
	if result.MonthlyRepayment <= 0 {
		t.Errorf("monthly repayment = %.2f, want positive", result.MonthlyRepayment)
	}
}

func TestEstimateMortgageHandler_MethodNotAllowed(t *testing.T) {
	handler := NewMortgageHandler(service.NewMortgageService(zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/calc/mortgage", nil)
	rec := httptest.NewRecorder()

	handler.EstimateMortgage(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestEstimateMortgageHandler_MalformedBody(t *testing.T) {
	handler := NewMortgageHandler(service.NewMortgageService(zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/calc/mortgage", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.EstimateMortgage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestEstimateMortgageHandler_InvalidInput(t *testing.T) {
	handler := NewMortgageHandler(service.NewMortgageService(zap.NewNop()))

	body := `{"price": 1500000, "downpayment_percent": 25, "interest_rate": 3.5, "tenure_years": 0}`
	req := httptest.NewRequest(http.MethodPost, "/calc/mortgage", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.EstimateMortgage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
