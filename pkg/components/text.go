package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// textTags lists the semantic tags Text may render as.
var textTags = map[string]struct{}{
	"p": {}, "span": {}, "div": {}, "label": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"strong": {}, "em": {}, "small": {}, "blockquote": {},
}

const defaultTextTag = "p"

// TextProps configures the Text primitive.
type TextProps struct {
	// Content is the escaped text body.
	Content string
	// Tag selects the element; unset renders a paragraph. Unknown tags
	// degrade to the default with a builder warning.
	Tag string
	// For associates a label tag with a control ID. Ignored for other tags.
	For string
	ID  string
	// Style selects typography utilities, including the Class override.
	Style tailwind.TextProps
}

// Text renders styled text content in a semantic tag.
func Text(p TextProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		tag := p.Tag
		if tag == "" {
			tag = defaultTextTag
		} else if _, ok := textTags[tag]; !ok {
			b.Warnf("unknown text tag %q, using %q", tag, defaultTextTag)
			tag = defaultTextTag
		}

		if err := writeString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if tag == "label" {
			if err := writeAttr(w, "for", p.For); err != nil {
				return err
			}
		}
		if err := writeAttr(w, "class", b.BuildTextClasses(p.Style)); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}
		if err := writeText(w, p.Content); err != nil {
			return err
		}
		return writeString(w, "</"+tag+">")
	})
}
