// Package validate checks user input for pattern lists and profile fields
// before it is written to the config file.
//
// The domain rule itself never calls into this package; a pattern that can
// never match simply never matches. These checks run when lists are saved
// and on request from check --lint.
//
// # Validation Functions
//
// Pattern rejects a single entry that cannot match a domain.
// Patterns checks a whole list and reports every problem.
// FieldName validates the name a profile field is stored under.
// Content enforces a size limit on list text read from stdin or a file.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe error checking:
//
//	if errors.Is(err, validate.ErrInvalidPattern) {
//	    // handle bad pattern
//	}
package validate
