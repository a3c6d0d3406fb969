// messages.go defines the message identifiers callers can translate.

package domain

// Message identifiers. A caller with a message catalog looks these up; the
// List variants are appended before the comma-joined pattern list when the
// config asks for it.
const (
	KeyNotAllowedDomain     = "NotAllowedDomain"
	KeyNotAllowedDomainList = "NotAllowedDomainList"
	KeyDisallowedDomain     = "DisallowedDomain"
	KeyDisallowedDomainList = "DisallowedDomainList"
)

var defaultText = map[string]string{
	KeyNotAllowedDomain:     "The email address is not from an allowed domain.",
	KeyNotAllowedDomainList: "The following domains are allowed: ",
	KeyDisallowedDomain:     "The email address is from a disallowed domain.",
	KeyDisallowedDomainList: "The following domains are disallowed: ",
}

// Messages resolves a message identifier to display text. def is the
// English default and must be returned when the key is unknown.
type Messages interface {
	Lookup(key, def string) string
}

type builtin struct{}

func (builtin) Lookup(_, def string) string { return def }

// DefaultMessages returns the English defaults for every key.
var DefaultMessages Messages = builtin{}

// MessageKeys returns every identifier in display order.
func MessageKeys() []string {
	return []string{
		KeyNotAllowedDomain, KeyNotAllowedDomainList,
		KeyDisallowedDomain, KeyDisallowedDomainList,
	}
}

// DefaultText returns the English text for key, or "" when unknown.
func DefaultText(key string) string {
	return defaultText[key]
}
