package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"catalog/internal/model"
)

type fakeCourseRepo struct {
	courses []model.Course
	created []model.CourseCreate
	err     error
}

func (f *fakeCourseRepo) ListCourses(ctx context.Context, courseType string) ([]model.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	if courseType == "" {
		return f.courses, nil
	}
	var filtered []model.Course
	for _, c := range f.courses {
		if c.Type == courseType {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, c)
	return &model.Course{ID: "generated", Name: c.Name, Code: c.Code, Type: c.Type, Slot: c.Slot}, nil
}

type fakeCatalogRepo struct {
	docs map[string]map[string][]string
	err  error
}

func (f *fakeCatalogRepo) SetDepartmentCourses(ctx context.Context, department string, semesters map[string][]string) error {
	if f.err != nil {
		return f.err
	}
	if f.docs == nil {
		f.docs = make(map[string]map[string][]string)
	}
	f.docs[department] = semesters
	return nil
}

func (f *fakeCatalogRepo) GetDepartmentCourses(ctx context.Context, department string) (map[string][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[department], nil
}

func TestSemesterCoursesOutOfRange(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, &fakeCatalogRepo{})

	for _, semester := range []int{0, -1, 9, 100} {
		_, err := svc.SemesterCourses(context.Background(), "CS", semester)
		if !errors.Is(err, ErrSemesterOutOfRange) {
			t.Errorf("semester %d: expected ErrSemesterOutOfRange, got %v", semester, err)
		}
	}
}

func TestSemesterCoursesUnknownDepartment(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, &fakeCatalogRepo{})

	_, err := svc.SemesterCourses(context.Background(), "XX", 5)
	if !errors.Is(err, ErrUnknownDepartment) {
		t.Errorf("expected ErrUnknownDepartment, got %v", err)
	}
}

func TestSemesterCoursesNotFound(t *testing.T) {
	// No document at all for the department.
	svc := NewCourseService(&fakeCourseRepo{}, &fakeCatalogRepo{})
	_, err := svc.SemesterCourses(context.Background(), "CS", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing document, got %v", err)
	}

	// Document exists, but not the requested semester.
	catalog := &fakeCatalogRepo{docs: map[string]map[string][]string{
		"Computer Science and Engineering": {"3": {"CS 213"}},
	}}
	svc = NewCourseService(&fakeCourseRepo{}, catalog)
	_, err = svc.SemesterCourses(context.Background(), "CS", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing semester, got %v", err)
	}
}

func TestSemesterCoursesFound(t *testing.T) {
	catalog := &fakeCatalogRepo{docs: map[string]map[string][]string{
		"Computer Science and Engineering": {"3": {"CS 213", "CS 215"}},
	}}
	svc := NewCourseService(&fakeCourseRepo{}, catalog)

	codes, err := svc.SemesterCourses(context.Background(), "CS", 3)
	if err != nil {
		t.Fatalf("SemesterCourses: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"CS 213", "CS 215"}) {
		t.Errorf("unexpected codes: %v", codes)
	}
}

func TestListCoursesByType(t *testing.T) {
	repo := &fakeCourseRepo{courses: []model.Course{
		{ID: "1", Name: "Data Structures", Code: "CS 213", Type: model.TypeTheory, Slot: "5"},
		{ID: "2", Name: "Circuits Lab", Code: "EE 224", Type: model.TypeLab, Slot: "L2"},
	}}
	svc := NewCourseService(repo, &fakeCatalogRepo{})

	labs, err := svc.ListCourses(context.Background(), model.TypeLab)
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(labs) != 1 || labs[0].Code != "EE 224" {
		t.Errorf("unexpected filtered courses: %v", labs)
	}
}
