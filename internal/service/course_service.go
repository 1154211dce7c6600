package service

import (
	"context"
	"errors"
	"strconv"

	"catalog/internal/department"
	"catalog/internal/model"
	"catalog/internal/repository"
)

// Lookup failures surfaced to the HTTP boundary.
var (
	ErrUnknownDepartment  = errors.New("unknown department code")
	ErrSemesterOutOfRange = errors.New("semester must be between 1 and 8")
	ErrNotFound           = errors.New("no courses recorded")
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	// ListCourses returns all persisted courses, optionally filtered by type.
	ListCourses(ctx context.Context, courseType string) ([]model.Course, error)
	// CreateCourse persists a validated course record.
	CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error)
	// SemesterCourses returns the course codes recorded for a department
	// code and semester number.
	SemesterCourses(ctx context.Context, departmentCode string, semester int) ([]string, error)
}

type courseService struct {
	courses repository.CourseRepository
	catalog repository.CatalogRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courses repository.CourseRepository, catalog repository.CatalogRepository) CourseService {
	return &courseService{courses: courses, catalog: catalog}
}

func (s *courseService) ListCourses(ctx context.Context, courseType string) ([]model.Course, error) {
	return s.courses.ListCourses(ctx, courseType)
}

func (s *courseService) CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error) {
	return s.courses.CreateCourse(ctx, c)
}

func (s *courseService) SemesterCourses(ctx context.Context, departmentCode string, semester int) ([]string, error) {
	if semester < 1 || semester > 8 {
		return nil, ErrSemesterOutOfRange
	}
	name, ok := department.NameForCode(departmentCode)
	if !ok {
		return nil, ErrUnknownDepartment
	}

	semesters, err := s.catalog.GetDepartmentCourses(ctx, name)
	if err != nil {
		return nil, err
	}
	if semesters == nil {
		return nil, ErrNotFound
	}
	codes, ok := semesters[strconv.Itoa(semester)]
	if !ok {
		return nil, ErrNotFound
	}
	return codes, nil
}
