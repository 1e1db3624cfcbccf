package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

var buttonTypes = map[string]struct{}{
	"button": {}, "submit": {}, "reset": {},
}

const defaultButtonType = "button"

// ButtonProps configures the Button primitive. Click behavior is wired by
// the host; the component only emits markup and state attributes.
type ButtonProps struct {
	Label string
	// Type is the button element type; unset means "button".
	Type      string
	Variant   tailwind.ButtonVariant
	Size      tailwind.Size
	FullWidth bool
	// Disabled emits the attribute and aria-disabled.
	Disabled bool
	// Loading emits aria-busy and a spinner block before the label.
	Loading bool
	ID      string
	Class   string
}

// spinnerClasses styles the loading indicator. It rides along with the
// label rather than going through the class tables, since it is not a
// themeable surface.
const spinnerClasses = "mr-2 inline-block h-4 w-4 animate-spin rounded-full border-2 border-current border-t-transparent"

// Button renders a themed button element.
func Button(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		btnType := p.Type
		if btnType == "" {
			btnType = defaultButtonType
		} else if _, ok := buttonTypes[btnType]; !ok {
			b.Warnf("unknown button type %q, using %q", btnType, defaultButtonType)
			btnType = defaultButtonType
		}

		classes := b.BuildButtonClasses(tailwind.ButtonProps{
			Variant:   p.Variant,
			Size:      p.Size,
			FullWidth: p.FullWidth,
			Class:     p.Class,
		})

		if err := writeString(w, "<button"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if err := writeAttr(w, "type", btnType); err != nil {
			return err
		}
		if err := writeAttr(w, "class", classes); err != nil {
			return err
		}
		if p.Disabled {
			if err := writeFlag(w, "disabled", true); err != nil {
				return err
			}
			if err := writeAttr(w, "aria-disabled", "true"); err != nil {
				return err
			}
		}
		if p.Loading {
			if err := writeAttr(w, "aria-busy", "true"); err != nil {
				return err
			}
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}
		if p.Loading {
			if err := writeString(w, `<span class="`+spinnerClasses+`" aria-hidden="true"></span>`); err != nil {
				return err
			}
		}
		if err := writeText(w, p.Label); err != nil {
			return err
		}
		return writeString(w, "</button>")
	})
}
