package components

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// FieldValidator checks a field value and returns a user-facing message,
// or "" when the value passes. Validation never returns errors; failures
// surface only through the form's field-to-message map.
type FieldValidator func(value string) string

// Required rejects empty values.
func Required(message string) FieldValidator {
	if message == "" {
		message = "This field is required"
	}
	return func(value string) string {
		if value == "" {
			return message
		}
		return ""
	}
}

// MinLength rejects values shorter than n runes. Empty values pass so the
// rule composes with Required rather than duplicating it.
func MinLength(n int) FieldValidator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if utf8.RuneCountInString(value) < n {
			return fmt.Sprintf("Must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLength rejects values longer than n runes.
func MaxLength(n int) FieldValidator {
	return func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("Must be at most %d characters", n)
		}
		return ""
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email rejects values that do not look like an address. Empty values
// pass, as with MinLength.
func Email() FieldValidator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if !emailPattern.MatchString(value) {
			return "Must be a valid email address"
		}
		return ""
	}
}

// Pattern rejects values not matching re.
func Pattern(re *regexp.Regexp, message string) FieldValidator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if !re.MatchString(value) {
			return message
		}
		return ""
	}
}

// Field describes one form input.
type Field struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	// Help renders under the input and is linked via aria-describedby.
	Help       string
	Required   bool
	Size       tailwind.Size
	Validators []FieldValidator
}

// Form manages field values, validation state and submission. Validation
// runs on Submit; after the first submit attempt, changed fields
// revalidate live so errors clear as the user types. Failures populate
// the error map only, never error returns.
type Form struct {
	mu        sync.Mutex
	id        string
	class     string
	fields    []Field
	values    map[string]string
	errors    map[string]string
	submitted bool
	submitTry bool
	label     string
	onSubmit  func(values map[string]string)
}

// NewForm creates an empty form with the given element ID prefix.
func NewForm(id string) *Form {
	if id == "" {
		id = "form"
	}
	return &Form{
		id:     id,
		values: make(map[string]string),
		errors: make(map[string]string),
		label:  "Submit",
	}
}

// WithClass adds caller classes to the form element.
func (f *Form) WithClass(class string) *Form {
	f.class = class
	return f
}

// WithSubmitLabel sets the submit button label.
func (f *Form) WithSubmitLabel(label string) *Form {
	if label != "" {
		f.label = label
	}
	return f
}

// WithOnSubmit registers a callback fired with a copy of the values when
// submission passes validation.
func (f *Form) WithOnSubmit(fn func(values map[string]string)) *Form {
	f.onSubmit = fn
	return f
}

// AddField appends a field. A Required field gains the Required validator
// automatically.
func (f *Form) AddField(field Field) *Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	if field.Required {
		field.Validators = append([]FieldValidator{Required("")}, field.Validators...)
	}
	f.fields = append(f.fields, field)
	return f
}

// SetValue updates a field value. After a submit attempt the field
// revalidates immediately, clearing or refreshing its error.
func (f *Form) SetValue(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	if f.submitTry {
		f.validateFieldLocked(name)
	}
}

// Value returns a field's current value.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Errors returns a copy of the field-to-message error map.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for name, msg := range f.errors {
		out[name] = msg
	}
	return out
}

// Error returns the message for one field.
func (f *Form) Error(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.errors[name]
	return msg, ok
}

// Validate runs every field's validators and rebuilds the error map,
// returning a copy.
func (f *Form) Validate() map[string]string {
	f.mu.Lock()
	for _, field := range f.fields {
		f.validateFieldLocked(field.Name)
	}
	f.mu.Unlock()
	return f.Errors()
}

func (f *Form) validateFieldLocked(name string) {
	for _, field := range f.fields {
		if field.Name != name {
			continue
		}
		value := f.values[name]
		for _, validate := range field.Validators {
			if msg := validate(value); msg != "" {
				f.errors[name] = msg
				return
			}
		}
		delete(f.errors, name)
		return
	}
}

// Submit validates all fields. On success it marks the form submitted and
// fires the callback with a copy of the values; on failure the error map
// holds one message per failing field.
func (f *Form) Submit() bool {
	f.mu.Lock()
	f.submitTry = true
	for _, field := range f.fields {
		f.validateFieldLocked(field.Name)
	}
	if len(f.errors) > 0 {
		f.mu.Unlock()
		return false
	}
	f.submitted = true
	values := make(map[string]string, len(f.values))
	for name, value := range f.values {
		values[name] = value
	}
	fn := f.onSubmit
	f.mu.Unlock()

	if fn != nil {
		fn(values)
	}
	return true
}

// Submitted reports whether a submission has passed validation.
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Reset clears values, errors and submission state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string)
	f.errors = make(map[string]string)
	f.submitted = false
	f.submitTry = false
}

func (f *Form) fieldID(name string) string {
	return f.id + "-" + name
}

// Render writes the form with a labeled input per field. Errored fields
// render their input in the error state plus a role="alert" message tied
// to the input with aria-describedby.
func (f *Form) Render(ctx context.Context, w io.Writer) error {
	f.mu.Lock()
	id := f.id
	class := f.class
	fields := f.fields
	label := f.label
	values := make(map[string]string, len(f.values))
	for name, value := range f.values {
		values[name] = value
	}
	errors := make(map[string]string, len(f.errors))
	for name, msg := range f.errors {
		errors[name] = msg
	}
	f.mu.Unlock()

	b := builderFrom(ctx)

	if err := writeString(w, "<form"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", id); err != nil {
		return err
	}
	if err := writeAttr(w, "class", b.BuildBaseClasses("form", class)); err != nil {
		return err
	}
	if err := writeFlag(w, "novalidate", true); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	for _, field := range fields {
		fieldID := f.fieldID(field.Name)
		errMsg, hasErr := errors[field.Name]

		if err := writeString(w, "<div>"); err != nil {
			return err
		}

		if field.Label != "" {
			fieldLabel := Text(TextProps{
				Content: field.Label,
				Tag:     "label",
				For:     fieldID,
				Style:   tailwind.TextProps{Class: b.BuildBaseClasses("form-label", "")},
			})
			if err := fieldLabel.Render(ctx, w); err != nil {
				return err
			}
		}

		describedBy := ""
		if hasErr {
			describedBy = fieldID + "-error"
		} else if field.Help != "" {
			describedBy = fieldID + "-help"
		}

		variant := tailwind.InputDefault
		if hasErr {
			variant = tailwind.InputError
		}

		input := Input(InputProps{
			ID:          fieldID,
			Type:        field.Type,
			Name:        field.Name,
			Value:       values[field.Name],
			Placeholder: field.Placeholder,
			Variant:     variant,
			Size:        field.Size,
			Required:    field.Required,
			DescribedBy: describedBy,
		})
		if err := input.Render(ctx, w); err != nil {
			return err
		}

		if hasErr {
			if err := writeString(w, `<p id="`+templ.EscapeString(fieldID+"-error")+`" role="alert" class="`+templ.EscapeString(b.BuildBaseClasses("form-error", ""))+`">`); err != nil {
				return err
			}
			if err := writeText(w, errMsg); err != nil {
				return err
			}
			if err := writeString(w, "</p>"); err != nil {
				return err
			}
		} else if field.Help != "" {
			if err := writeString(w, `<p id="`+templ.EscapeString(fieldID+"-help")+`" class="`+templ.EscapeString(b.BuildBaseClasses("form-help", ""))+`">`); err != nil {
				return err
			}
			if err := writeText(w, field.Help); err != nil {
				return err
			}
			if err := writeString(w, "</p>"); err != nil {
				return err
			}
		}

		if err := writeString(w, "</div>"); err != nil {
			return err
		}
	}

	submit := Button(ButtonProps{
		Label:   label,
		Type:    "submit",
		Variant: tailwind.ButtonPrimary,
	})
	if err := submit.Render(ctx, w); err != nil {
		return err
	}

	return writeString(w, "</form>")
}
