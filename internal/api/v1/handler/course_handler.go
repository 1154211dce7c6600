package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"catalog/internal/api/v1/dto"
	"catalog/internal/model"
	"catalog/internal/service"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/courses", h.handleCourses)
	mux.HandleFunc("/courses/", h.handleCoursePath)
}

func (h *CourseHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listCourses(w, r)
	case http.MethodPost:
		h.createCourse(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) handleCoursePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path == "/courses/" {
		h.listCourses(w, r)
		return
	}
	h.getSemesterCourses(w, r)
}

// listCourses godoc
// @Summary List courses
// @Description Retrieves all persisted courses, optionally filtered by course type.
// @Tags courses
// @Produce json
// @Param type query string false "Course type filter (Theory, Lab, Non-Credit)"
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 500 {string} string "Failed to list courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.logger.Error().Err(err).Msg("listing courses")
		http.Error(w, "Failed to list courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, dto.CourseResponseDTO{
			ID:   c.ID,
			Name: c.Name,
			Code: c.Code,
			Type: c.Type,
			Slot: c.Slot,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// createCourse godoc
// @Summary Create a new course
// @Description Validates and persists a course record.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 500 {string} string "Failed to create course"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := model.CourseCreate{
		Name: strings.TrimSpace(req.Name),
		Code: strings.TrimSpace(req.Code),
		Type: strings.TrimSpace(req.Type),
		Slot: strings.TrimSpace(req.Slot),
	}
	if err := h.validate.Struct(&course); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.courseService.CreateCourse(r.Context(), course)
	if err != nil {
		h.logger.Error().Err(err).Str("course_code", course.Code).Msg("creating course")
		http.Error(w, "Failed to create course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	resp := dto.CourseResponseDTO{
		ID:   created.ID,
		Name: created.Name,
		Code: created.Code,
		Type: created.Type,
		Slot: created.Slot,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// getSemesterCourses godoc
// @Summary List course codes for a department and semester
// @Description Retrieves the consolidated course codes recorded for a department code and semester number.
// @Tags courses
// @Produce json
// @Param departmentCode path string true "Two-letter department code"
// @Param semester path int true "Semester number (1-8)"
// @Success 200 {array} string
// @Failure 400 {string} string "Unknown department code or semester out of range"
// @Failure 404 {string} string "No courses recorded for this department and semester"
// @Router /courses/{departmentCode}/{semester} [get]
func (h *CourseHandler) getSemesterCourses(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/courses/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	departmentCode := parts[0]
	semester, err := strconv.Atoi(parts[1])
	if err != nil {
		http.Error(w, "Invalid semester: "+parts[1], http.StatusBadRequest)
		return
	}

	codes, err := h.courseService.SemesterCourses(r.Context(), departmentCode, semester)
	switch {
	case errors.Is(err, service.ErrSemesterOutOfRange), errors.Is(err, service.ErrUnknownDepartment):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "No courses recorded for "+departmentCode+" semester "+parts[1], http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error().Err(err).Str("department", departmentCode).Int("semester", semester).Msg("fetching semester courses")
		http.Error(w, "Failed to retrieve courses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(codes)
}
