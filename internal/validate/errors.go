// errors.go defines sentinel errors for validation failures.
//
// Sentinel errors rather than error types: failures carry no context beyond
// the category. Detailed messages are added by wrapping with fmt.Errorf.

package validate

import "errors"

var (
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrInvalidFieldName = errors.New("invalid field name")
	ErrContentTooLarge  = errors.New("content too large")
)
