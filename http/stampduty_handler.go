package http

import (
	"encoding/json"
	"net/http"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

type StampDutyHandler struct {
	service *service.StampDutyService
}

func NewStampDutyHandler(service *service.StampDutyService) *StampDutyHandler {
	return &StampDutyHandler{service: service}
}

func (h *StampDutyHandler) CalculateStampDuty(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.StampDutyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateStampDuty(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
