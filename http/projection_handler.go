package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *zap.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *zap.Logger) *ProjectionHandler {
	return &ProjectionHandler{service: service, logger: logger}
}

func (h *ProjectionHandler) NewLaunchRoi(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.NewLaunchProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Info("rejecting malformed projection request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulateNewLaunchRoi(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, result)
}

func (h *ProjectionHandler) ResaleRoi(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ResaleProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Info("rejecting malformed projection request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulateResaleRoi(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, result)
}

// writeJSON encodes into a buffer first so a failed encode never writes a
// 200 header.
func (h *ProjectionHandler) writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
