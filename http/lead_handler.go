package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

type LeadHandler struct {
	service *service.LeadService
}

func NewLeadHandler(service *service.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.service.SubmitLead(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVerificationFailed):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, service.ErrLeadStorage):
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(lead)
}
