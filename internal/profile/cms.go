// cms.go describes the editor layout for a profile field.

package profile

// ItemKind is the type of an editor layout entry.
type ItemKind string

const (
	ItemHeader   ItemKind = "header"
	ItemLiteral  ItemKind = "literal"
	ItemText     ItemKind = "text"
	ItemTextArea ItemKind = "textarea"
	ItemCheckbox ItemKind = "checkbox"
	ItemDropdown ItemKind = "dropdown"
)

// Item is one entry in a field's editor layout.
type Item struct {
	Kind  ItemKind `json:"kind"`
	Name  string   `json:"name"`
	Title string   `json:"title,omitempty"`
	Value string   `json:"value,omitempty"`
	Level int      `json:"level,omitempty"`
}

// HeaderTitle and HelperText introduce the domain settings on the Email field.
const (
	HeaderTitle = "Domain Validation"
	HelperText  = "Allow or disallow profile registration based on the domain of the user's email address. " +
		"One domain can be specified per line. You can use the wildcards (e.g.: *.example.com) to catch subdomains."
)

// CMSFields returns the editor layout. Domain settings appear, behind a
// header and helper text, only on the Email field.
func (f *Field) CMSFields() []Item {
	items := []Item{
		{Kind: ItemText, Name: KeyMemberField, Title: "Member field", Value: f.MemberField},
		{Kind: ItemDropdown, Name: KeyPublicVisibility, Title: "Public visibility", Value: f.PublicVisibility},
		{Kind: ItemCheckbox, Name: KeyPublicVisibilityDefault, Title: "Visible by default", Value: boolValue(f.PublicVisibilityDefault)},
	}
	if !f.IsEmail() {
		return items
	}
	return append(items,
		Item{Kind: ItemHeader, Name: "DomainValidationHeader", Title: HeaderTitle, Level: 3},
		Item{Kind: ItemLiteral, Name: "DomainValidationHelper", Value: HelperText},
		Item{Kind: ItemTextArea, Name: KeyAllowedDomains, Title: "Allowed domains", Value: f.AllowedDomains},
		Item{Kind: ItemTextArea, Name: KeyDisallowedDomains, Title: "Disallowed domains", Value: f.DisallowedDomains},
		Item{Kind: ItemCheckbox, Name: KeyShowDomainsOnError, Title: "Show domains on error", Value: boolValue(f.ShowDomainsOnError)},
	)
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
