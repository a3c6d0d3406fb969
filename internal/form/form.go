// Package form is a small model of a hosting form: named fields, a
// visibility wrapper, and a validator that collects field-scoped errors.
// It exists so the domain-aware email field can be swapped into a profile
// form the way a CMS would do it.
package form

// Field is a named form control.
type Field interface {
	Name() string
}

// Validatable fields record their own errors on a Validator.
type Validatable interface {
	Field
	Validate(v *Validator) bool
}

// FieldList is an ordered set of form fields.
type FieldList []Field

// ByName returns the field called name, or nil. A visibility wrapper
// answers to its child's name.
func (l FieldList) ByName(name string) Field {
	for _, f := range l {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Replace swaps the field called name for f. It reports whether a field was
// found.
func (l FieldList) Replace(name string, f Field) bool {
	for i, old := range l {
		if old.Name() == name {
			l[i] = f
			return true
		}
	}
	return false
}

// Names returns the field names in order.
func (l FieldList) Names() []string {
	out := make([]string, len(l))
	for i, f := range l {
		out[i] = f.Name()
	}
	return out
}

// TextField is a single-line text input.
type TextField struct {
	name      string
	Title     string
	Value     string
	MaxLength int
	Form      string
}

// NewTextField creates a text field.
func NewTextField(name, title, value string) *TextField {
	return &TextField{name: name, Title: title, Value: value}
}

// Name implements Field.
func (t *TextField) Name() string { return t.name }

// Validate implements Validatable. Plain text fields accept anything.
func (t *TextField) Validate(*Validator) bool { return true }

// CheckableVisibilityField wraps a field with a "show on public profile"
// checkbox.
type CheckableVisibilityField struct {
	child         Field
	alwaysVisible bool
	checked       bool
}

// NewCheckableVisibilityField wraps child.
func NewCheckableVisibilityField(child Field) *CheckableVisibilityField {
	return &CheckableVisibilityField{child: child}
}

// Name returns the child's name.
func (c *CheckableVisibilityField) Name() string { return c.child.Name() }

// Child returns the wrapped field.
func (c *CheckableVisibilityField) Child() Field { return c.child }

// MakeAlwaysVisible removes the checkbox choice; the value is always shown.
func (c *CheckableVisibilityField) MakeAlwaysVisible() { c.alwaysVisible = true }

// AlwaysVisible reports whether MakeAlwaysVisible was called.
func (c *CheckableVisibilityField) AlwaysVisible() bool { return c.alwaysVisible }

// SetChecked sets the checkbox value.
func (c *CheckableVisibilityField) SetChecked(v bool) { c.checked = v }

// Checked returns the checkbox value.
func (c *CheckableVisibilityField) Checked() bool { return c.checked }

// Validate delegates to the child when it can validate itself.
func (c *CheckableVisibilityField) Validate(v *Validator) bool {
	if vf, ok := c.child.(Validatable); ok {
		return vf.Validate(v)
	}
	return true
}
