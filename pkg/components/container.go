package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// containerTags lists the structural tags Container may render as.
var containerTags = map[string]struct{}{
	"div": {}, "section": {}, "article": {}, "main": {},
	"aside": {}, "header": {}, "footer": {}, "nav": {},
}

const defaultContainerTag = "div"

// ContainerProps configures the Container primitive.
type ContainerProps struct {
	// Tag selects the element; unset renders a div.
	Tag string
	ID  string
	// Role sets an explicit ARIA role when the tag alone is not enough.
	Role string
	// Style selects layout, surface and spacing utilities.
	Style tailwind.ContainerProps
}

// Container renders a structural element around its children.
func Container(p ContainerProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		tag := p.Tag
		if tag == "" {
			tag = defaultContainerTag
		} else if _, ok := containerTags[tag]; !ok {
			b.Warnf("unknown container tag %q, using %q", tag, defaultContainerTag)
			tag = defaultContainerTag
		}

		if err := writeString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if err := writeAttr(w, "role", p.Role); err != nil {
			return err
		}
		if err := writeAttr(w, "class", b.BuildContainerClasses(p.Style)); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		return writeString(w, "</"+tag+">")
	})
}
