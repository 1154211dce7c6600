package dto

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Name string `json:"course_name"`
	Code string `json:"course_code"`
	Type string `json:"course_type"`
	Slot string `json:"slot"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID   string `json:"id"`
	Name string `json:"course_name"`
	Code string `json:"course_code"`
	Type string `json:"course_type"`
	Slot string `json:"slot"`
}
