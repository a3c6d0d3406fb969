package form

import (
	"errors"
	"strings"
)

// FieldError is a validation failure scoped to one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Validator collects field errors across a form submission.
type Validator struct {
	errs []FieldError
}

// ValidationError records a failure for field.
func (v *Validator) ValidationError(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Errors returns the recorded failures in order.
func (v *Validator) Errors() []FieldError { return v.errs }

// Valid reports whether nothing has been recorded.
func (v *Validator) Valid() bool { return len(v.errs) == 0 }

// Err joins the recorded failures, or returns nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	errs := make([]error, len(v.errs))
	for i, e := range v.errs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// String renders one failure per line.
func (v *Validator) String() string {
	lines := make([]string, len(v.errs))
	for i, e := range v.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// ValidateAll runs every validatable field in l and reports whether all passed.
func ValidateAll(l FieldList, v *Validator) bool {
	ok := true
	for _, f := range l {
		if vf, is := f.(Validatable); is && !vf.Validate(v) {
			ok = false
		}
	}
	return ok
}
