package model

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// courseCodeRe accepts exactly three code shapes: "CS 101", "MTH101", "CS1014".
var courseCodeRe = regexp.MustCompile(`^([A-Z]{2} [0-9]{3}|[A-Z]{3}[0-9]{3}|[A-Z]{2}[0-9]{4})$`)

// theorySlotRe accepts decimal slots 1 through 15 with no extra characters.
var theorySlotRe = regexp.MustCompile(`^(1[0-5]|[1-9])$`)

// labSlotRe accepts lab slots L1 through L6.
var labSlotRe = regexp.MustCompile(`^L[1-6]$`)

// RegisterValidations wires the course-specific rules into a validator
// instance. The slot format depends on the course type, so it is checked at
// the struct level rather than with a field tag.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("course_code", validCourseCode); err != nil {
		return err
	}
	v.RegisterStructValidation(courseSlotValidation, Course{}, CourseCreate{})
	return nil
}

func validCourseCode(fl validator.FieldLevel) bool {
	return courseCodeRe.MatchString(fl.Field().String())
}

func courseSlotValidation(sl validator.StructLevel) {
	var courseType, slot string
	switch c := sl.Current().Interface().(type) {
	case Course:
		courseType, slot = c.Type, c.Slot
	case CourseCreate:
		courseType, slot = c.Type, c.Slot
	default:
		return
	}

	ok := true
	switch courseType {
	case TypeTheory:
		ok = theorySlotRe.MatchString(slot)
	case TypeLab:
		ok = labSlotRe.MatchString(slot)
	case TypeNonCredit:
		// Non-Credit courses carry no slot format constraint beyond being
		// present; the required tag already rejects the empty string.
	}
	if !ok {
		sl.ReportError(slot, "Slot", "Slot", "slot", courseType)
	}
}
