package dto

// DepartmentResponseDTO is returned in API responses for departments
type DepartmentResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}
