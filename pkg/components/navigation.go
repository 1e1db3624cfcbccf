package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// NavItem is one entry in a Navigation bar.
type NavItem struct {
	Label string
	Href  string
	// Active marks the current page; it styles the item and emits
	// aria-current="page".
	Active bool
}

// NavigationProps configures the Navigation composite.
type NavigationProps struct {
	Items []NavItem
	// Brand renders before the item list, typically a logo or site name.
	Brand templ.Component
	// Label names the landmark for assistive tech; unset means "Main".
	Label string
	// Vertical stacks the items instead of laying them out in a row.
	Vertical bool
	// Collapsible renders a small-screen menu toggle whose aria-expanded
	// mirrors the collapsed state. The host flips Collapsed on toggle
	// clicks and re-renders.
	Collapsible bool
	Collapsed   bool
	ID          string
	Class       string
}

// Navigation renders a nav landmark with a styled link list.
func Navigation(p NavigationProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := builderFrom(ctx)

		label := p.Label
		if label == "" {
			label = "Main"
		}
		menuID := p.ID + "-menu"
		if p.ID == "" {
			menuID = "nav-menu"
		}

		if err := writeString(w, "<nav"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", p.ID); err != nil {
			return err
		}
		if err := writeAttr(w, "aria-label", label); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}

		if p.Brand != nil {
			if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("nav-brand", ""))+`">`); err != nil {
				return err
			}
			if err := p.Brand.Render(ctx, w); err != nil {
				return err
			}
			if err := writeString(w, "</div>"); err != nil {
				return err
			}
		}

		if p.Collapsible {
			if err := writeString(w, "<button"); err != nil {
				return err
			}
			if err := writeAttr(w, "type", "button"); err != nil {
				return err
			}
			if err := writeAttr(w, "class", b.BuildBaseClasses("nav-toggle", "")); err != nil {
				return err
			}
			if err := writeAttr(w, "aria-controls", menuID); err != nil {
				return err
			}
			if err := writeAttr(w, "aria-expanded", strconv.FormatBool(!p.Collapsed)); err != nil {
				return err
			}
			if err := writeAttr(w, "aria-label", "Toggle navigation"); err != nil {
				return err
			}
			if err := writeString(w, ">≡</button>"); err != nil {
				return err
			}
		}

		listBundles := []string{"nav"}
		if p.Vertical {
			listBundles = append(listBundles, "nav-vertical")
		}
		if p.Collapsible && p.Collapsed {
			listBundles = append(listBundles, "nav-collapsed")
		}

		if err := writeString(w, "<ul"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", menuID); err != nil {
			return err
		}
		if err := writeAttr(w, "class", b.BuildBundleClasses(listBundles, p.Class)); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}

		for _, item := range p.Items {
			if err := writeString(w, "<li>"); err != nil {
				return err
			}

			bundles := []string{"nav-item"}
			if item.Active {
				bundles = append(bundles, "nav-item-active")
			}
			classes := b.BuildBundleClasses(bundles, "")

			if err := writeString(w, "<a"); err != nil {
				return err
			}
			if err := writeAttr(w, "href", item.Href); err != nil {
				return err
			}
			if err := writeAttr(w, "class", classes); err != nil {
				return err
			}
			if item.Active {
				if err := writeAttr(w, "aria-current", "page"); err != nil {
					return err
				}
			}
			if err := writeString(w, ">"); err != nil {
				return err
			}
			if err := writeText(w, item.Label); err != nil {
				return err
			}
			if err := writeString(w, "</a></li>"); err != nil {
				return err
			}
		}
		return writeString(w, "</ul></nav>")
	})
}
