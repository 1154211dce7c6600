package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"catalog/internal/model"
	"catalog/internal/service"
)

type stubCourseRepo struct {
	courses []model.Course
}

func (s *stubCourseRepo) ListCourses(ctx context.Context, courseType string) ([]model.Course, error) {
	return s.courses, nil
}

func (s *stubCourseRepo) CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error) {
	return &model.Course{ID: "new-id", Name: c.Name, Code: c.Code, Type: c.Type, Slot: c.Slot}, nil
}

type stubCatalogRepo struct {
	docs map[string]map[string][]string
}

func (s *stubCatalogRepo) SetDepartmentCourses(ctx context.Context, department string, semesters map[string][]string) error {
	return nil
}

func (s *stubCatalogRepo) GetDepartmentCourses(ctx context.Context, department string) (map[string][]string, error) {
	return s.docs[department], nil
}

func newCourseMux(t *testing.T, courses *stubCourseRepo, catalog *stubCatalogRepo) *http.ServeMux {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := model.RegisterValidations(validate); err != nil {
		t.Fatalf("RegisterValidations: %v", err)
	}
	svc := service.NewCourseService(courses, catalog)
	mux := http.NewServeMux()
	NewCourseHandler(svc, validate, zerolog.Nop()).RegisterRoutes(mux)
	return mux
}

func TestGetSemesterCoursesStatusCodes(t *testing.T) {
	catalog := &stubCatalogRepo{docs: map[string]map[string][]string{
		"Computer Science and Engineering": {"3": {"CS 213", "CS 215"}},
	}}
	mux := newCourseMux(t, &stubCourseRepo{}, catalog)

	cases := []struct {
		path string
		want int
	}{
		{"/courses/XX/5", http.StatusBadRequest},
		{"/courses/CS/9", http.StatusBadRequest},
		{"/courses/CS/0", http.StatusBadRequest},
		{"/courses/CS/abc", http.StatusBadRequest},
		{"/courses/CS/5", http.StatusNotFound},
		{"/courses/EC/3", http.StatusNotFound},
		{"/courses/CS/3", http.StatusOK},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("GET %s: expected status %d, got %d (%s)", tc.path, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestGetSemesterCoursesBody(t *testing.T) {
	catalog := &stubCatalogRepo{docs: map[string]map[string][]string{
		"Computer Science and Engineering": {"3": {"CS 213", "CS 215"}},
	}}
	mux := newCourseMux(t, &stubCourseRepo{}, catalog)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/CS/3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var codes []string
	if err := json.NewDecoder(rec.Body).Decode(&codes); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(codes) != 2 || codes[0] != "CS 213" {
		t.Errorf("unexpected codes: %v", codes)
	}
}

func TestListCourses(t *testing.T) {
	repo := &stubCourseRepo{courses: []model.Course{
		{ID: "1", Name: "Data Structures", Code: "CS 213", Type: model.TypeTheory, Slot: "5"},
	}}
	mux := newCourseMux(t, repo, &stubCatalogRepo{})

	for _, path := range []string{"/courses", "/courses/"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
		var courses []map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&courses); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(courses) != 1 || courses[0]["course_code"] != "CS 213" {
			t.Errorf("GET %s: unexpected body %v", path, courses)
		}
	}
}

func TestCreateCourse(t *testing.T) {
	mux := newCourseMux(t, &stubCourseRepo{}, &stubCatalogRepo{})

	body := `{"course_name":"Data Structures","course_code":"CS 213","course_type":"Theory","slot":"5"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var created map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created["id"] != "new-id" || created["course_code"] != "CS 213" {
		t.Errorf("unexpected created course: %v", created)
	}
}

func TestCreateCourseValidationFailures(t *testing.T) {
	mux := newCourseMux(t, &stubCourseRepo{}, &stubCatalogRepo{})

	bodies := []string{
		`not json`,
		`{"course_name":"X","course_code":"CS123","course_type":"Theory","slot":"5"}`,
		`{"course_name":"X","course_code":"CS 213","course_type":"Practical","slot":"5"}`,
		`{"course_name":"X","course_code":"CS 213","course_type":"Theory","slot":"16"}`,
		`{"course_name":"X","course_code":"CS 213","course_type":"Lab","slot":"5"}`,
		`{"course_code":"CS 213","course_type":"Theory","slot":"5"}`,
	}
	for _, body := range bodies {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}
