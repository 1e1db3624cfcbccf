package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// CardProps configures the Card composite. Children render inside the
// body section; header and footer are optional.
type CardProps struct {
	// Title renders a default header when Header is nil.
	Title string
	// Subtitle renders muted under the title.
	Subtitle string
	// Header replaces the default title header entirely.
	Header templ.Component
	// Footer renders below the body when set.
	Footer templ.Component
	// Hover raises the card's elevation on pointer hover.
	Hover bool
	// Actionable marks the card as clickable: role="button", tabindex
	// and a pointer cursor. Click wiring stays host-side.
	Actionable bool
	ID         string
	Class      string
}

// Card renders a bordered surface with optional header and footer
// sections around its body children.
func Card(p CardProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		bundles := []string{"card"}
		if p.Hover {
			bundles = append(bundles, "card-hover")
		}
		if p.Actionable {
			bundles = append(bundles, "card-actionable")
		}

		if err := writeString(w, "<div"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if p.Actionable {
			if err := writeAttr(w, "role", "button"); err != nil {
				return err
			}
			if err := writeAttr(w, "tabindex", "0"); err != nil {
				return err
			}
		}
		if err := writeAttr(w, "class", b.BuildBundleClasses(bundles, p.Class)); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}

		if p.Header != nil || p.Title != "" {
			if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("card-header", ""))+`">`); err != nil {
				return err
			}
			if p.Header != nil {
				if err := p.Header.Render(ctx, w); err != nil {
					return err
				}
			} else {
				title := Text(TextProps{
					Content: p.Title,
					Tag:     "h3",
					Style:   tailwind.TextProps{Size: tailwind.FontSizeLG, Weight: tailwind.WeightSemibold},
				})
				if err := title.Render(ctx, w); err != nil {
					return err
				}
				if p.Subtitle != "" {
					subtitle := Text(TextProps{
						Content: p.Subtitle,
						Style:   tailwind.TextProps{Size: tailwind.FontSizeSM, Color: tailwind.ColorMuted},
					})
					if err := subtitle.Render(ctx, w); err != nil {
						return err
					}
				}
			}
			if err := writeString(w, "</div>"); err != nil {
				return err
			}
		}

		if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("card-body", ""))+`">`); err != nil {
			return err
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		if err := writeString(w, "</div>"); err != nil {
			return err
		}

		if p.Footer != nil {
			if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("card-footer", ""))+`">`); err != nil {
				return err
			}
			if err := p.Footer.Render(ctx, w); err != nil {
				return err
			}
			if err := writeString(w, "</div>"); err != nil {
				return err
			}
		}

		return writeString(w, "</div>")
	})
}
