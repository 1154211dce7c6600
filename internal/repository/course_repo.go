package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"catalog/internal/model"
)

// CourseRepository defines the interface for interacting with course documents
type CourseRepository interface {
	// ListCourses retrieves all courses, optionally filtered by course type.
	ListCourses(ctx context.Context, courseType string) ([]model.Course, error)
	// CreateCourse stores a new course and returns it with its generated ID.
	CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error)
}

type courseRepo struct {
	client     *firestore.Client
	collection string
	logger     zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository backed by a Firestore collection
func NewCourseRepo(client *firestore.Client, collection string, logger zerolog.Logger) CourseRepository {
	return &courseRepo{client: client, collection: collection, logger: logger}
}

// ListCourses streams every document in the courses collection. Documents
// whose fields no longer fit the course schema are logged and skipped rather
// than failing the whole listing.
func (r *courseRepo) ListCourses(ctx context.Context, courseType string) ([]model.Course, error) {
	col := r.client.Collection(r.collection)
	var iter *firestore.DocumentIterator
	if courseType != "" {
		iter = col.Where("course_type", "==", courseType).Documents(ctx)
	} else {
		iter = col.Documents(ctx)
	}
	defer iter.Stop()

	courses := []model.Course{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var course model.Course
		if err := doc.DataTo(&course); err != nil {
			r.logger.Warn().Err(err).Str("document", doc.Ref.ID).Msg("skipping malformed course document")
			continue
		}
		course.ID = doc.Ref.ID
		courses = append(courses, course)
	}
	return courses, nil
}

// CreateCourse adds a new course document with a generated ID.
func (r *courseRepo) CreateCourse(ctx context.Context, c model.CourseCreate) (*model.Course, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, c)
	if err != nil {
		return nil, err
	}
	return &model.Course{
		ID:   ref.ID,
		Name: c.Name,
		Code: c.Code,
		Type: c.Type,
		Slot: c.Slot,
	}, nil
}
