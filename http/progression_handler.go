package http

import (
	"encoding/json"
	"net/http"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

type ProgressionHandler struct {
	service *service.ProgressionService
}

func NewProgressionHandler(service *service.ProgressionService) *ProgressionHandler {
	return &ProgressionHandler{service: service}
}

func (h *ProgressionHandler) BuildSchedule(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ProgressionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildMilestoneSchedule(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
