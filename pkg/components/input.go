package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// InputProps configures the Input primitive.
type InputProps struct {
	// Type is the input element type; unset means "text".
	Type        string
	Name        string
	Value       string
	Placeholder string
	Variant     tailwind.InputVariant
	Size        tailwind.Size
	Disabled    bool
	Required    bool
	ReadOnly    bool
	ID          string
	Class       string
	// DescribedBy links the input to help or error text for screen
	// readers. Form wires this to its error and help elements.
	DescribedBy string
}

// Input renders a themed form input. The error variant announces itself
// with aria-invalid.
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		inputType := p.Type
		if inputType == "" {
			inputType = "text"
		}

		classes := b.BuildInputClasses(tailwind.InputProps{
			Variant: p.Variant,
			Size:    p.Size,
			Class:   p.Class,
		})

		if err := writeString(w, "<input"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if err := writeAttr(w, "type", inputType); err != nil {
			return err
		}
		if err := writeAttr(w, "name", p.Name); err != nil {
			return err
		}
		if err := writeAttr(w, "value", p.Value); err != nil {
			return err
		}
		if err := writeAttr(w, "placeholder", p.Placeholder); err != nil {
			return err
		}
		if err := writeAttr(w, "class", classes); err != nil {
			return err
		}
		if p.Variant == tailwind.InputError {
			if err := writeAttr(w, "aria-invalid", "true"); err != nil {
				return err
			}
		}
		if err := writeAttr(w, "aria-describedby", p.DescribedBy); err != nil {
			return err
		}
		if err := writeFlag(w, "disabled", p.Disabled); err != nil {
			return err
		}
		if err := writeFlag(w, "required", p.Required); err != nil {
			return err
		}
		if err := writeFlag(w, "readonly", p.ReadOnly); err != nil {
			return err
		}
		return writeString(w, ">")
	})
}
