package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// writeAttr emits a name="value" pair with an escaped value. Empty values
// emit nothing, matching the unset-prop rule of the class builders.
func writeAttr(w io.Writer, name, value string) error {
	if value == "" {
		return nil
	}
	return writeString(w, " "+name+`="`+templ.EscapeString(value)+`"`)
}

// writeFlag emits a bare boolean attribute such as disabled or required.
func writeFlag(w io.Writer, name string, set bool) error {
	if !set {
		return nil
	}
	return writeString(w, " "+name)
}

// writeText emits escaped text content.
func writeText(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	return writeString(w, templ.EscapeString(s))
}

func renderChildren(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// Fragment groups components into one, rendering them in order.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderChildren(ctx, w, children)
	})
}

// Raw renders a pre-escaped HTML string as-is. Callers own its safety.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeString(w, html)
	})
}
