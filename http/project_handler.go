package http

import (
	"encoding/json"
	"net/http"

	"github.com/danielkoh/property-launches/domain"
)

// ProjectHandler serves the project summary for one of the co-hosted
// launches.
type ProjectHandler struct {
	project domain.ProjectInfo
}

func NewProjectHandler(project domain.ProjectInfo) *ProjectHandler {
	return &ProjectHandler{project: project}
}

func (h *ProjectHandler) ProjectInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.project)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
