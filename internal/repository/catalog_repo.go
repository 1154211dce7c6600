package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CatalogRepository persists the consolidated department→semester→codes
// catalog, one document per department keyed by display name.
type CatalogRepository interface {
	// SetDepartmentCourses overwrites a department's document wholesale.
	SetDepartmentCourses(ctx context.Context, department string, semesters map[string][]string) error
	// GetDepartmentCourses returns a department's semester map, or nil when
	// no document exists.
	GetDepartmentCourses(ctx context.Context, department string) (map[string][]string, error)
}

type catalogRepo struct {
	client     *firestore.Client
	collection string
}

// NewCatalogRepo creates a new CatalogRepository backed by a Firestore collection
func NewCatalogRepo(client *firestore.Client, collection string) CatalogRepository {
	return &catalogRepo{client: client, collection: collection}
}

func (r *catalogRepo) SetDepartmentCourses(ctx context.Context, department string, semesters map[string][]string) error {
	_, err := r.client.Collection(r.collection).Doc(department).Set(ctx, semesters)
	return err
}

func (r *catalogRepo) GetDepartmentCourses(ctx context.Context, department string) (map[string][]string, error) {
	snap, err := r.client.Collection(r.collection).Doc(department).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	semesters := make(map[string][]string)
	for semester, value := range snap.Data() {
		items, ok := value.([]interface{})
		if !ok {
			continue
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			if code, ok := item.(string); ok {
				list = append(list, code)
			}
		}
		semesters[semester] = list
	}
	return semesters, nil
}
