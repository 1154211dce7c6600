package model

// Course types accepted by the catalog.
const (
	TypeTheory    = "Theory"
	TypeLab       = "Lab"
	TypeNonCredit = "Non-Credit"
)

// Course represents a validated course record. The document ID is assigned
// by the store and is not part of the stored fields.
type Course struct {
	ID   string `json:"id" firestore:"-"`
	Name string `json:"course_name" firestore:"course_name" validate:"required"`
	Code string `json:"course_code" firestore:"course_code" validate:"required,course_code"`
	Type string `json:"course_type" firestore:"course_type" validate:"required,oneof=Theory Lab Non-Credit"`
	Slot string `json:"slot" firestore:"slot" validate:"required"`
}

// CourseCreate carries the fields of a course before it has an ID.
type CourseCreate struct {
	Name string `json:"course_name" firestore:"course_name" validate:"required"`
	Code string `json:"course_code" firestore:"course_code" validate:"required,course_code"`
	Type string `json:"course_type" firestore:"course_type" validate:"required,oneof=Theory Lab Non-Credit"`
	Slot string `json:"slot" firestore:"slot" validate:"required"`
}
