package handler

import (
	"encoding/json"
	"net/http"

	"catalog/internal/api/v1/dto"
	"catalog/internal/department"
)

// DepartmentHandler serves the static department reference data
type DepartmentHandler struct{}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler() *DepartmentHandler {
	return &DepartmentHandler{}
}

// RegisterRoutes mounts department routes
func (h *DepartmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/departments", h.listDepartments)
}

// listDepartments godoc
// @Summary List departments
// @Description Retrieves all departments in the catalog.
// @Tags departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponseDTO
// @Router /departments [get]
func (h *DepartmentHandler) listDepartments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	departments := department.All()
	resp := make([]dto.DepartmentResponseDTO, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, dto.DepartmentResponseDTO{
			ID:          d.ID,
			Name:        d.Name,
			Code:        d.Code,
			Description: d.Description,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
