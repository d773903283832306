package http

import (
	"encoding/json"
	"net/http"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

type MortgageHandler struct {
	service *service.MortgageService
}

func NewMortgageHandler(service *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{service: service}
}

func (h *MortgageHandler) EstimateMortgage(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.MortgageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.EstimateMortgage(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
