package model

// Department represents static department reference data. Departments are
// identified by display name when cross-referencing scraped data and by
// two-letter code for external lookups.
type Department struct {
	ID          string `json:"id" firestore:"-" validate:"required"`
	Name        string `json:"name" firestore:"name" validate:"required"`
	Code        string `json:"code" firestore:"code" validate:"required,len=2,alpha,uppercase"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}
