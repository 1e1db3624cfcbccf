package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationLandmark(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{}))

	assert.Contains(t, out, `<nav aria-label="Main">`)
	assert.Contains(t, out, "</nav>")
}

func TestNavigationCustomLabel(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{Label: "Footer", ID: "footer-nav"}))

	assert.Contains(t, out, `id="footer-nav"`)
	assert.Contains(t, out, `aria-label="Footer"`)
}

func TestNavigationItems(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{
		Items: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Docs", Href: "/docs"},
		},
	}))

	assert.Contains(t, out, `href="/"`)
	assert.Contains(t, out, `href="/docs"`)
	assert.Contains(t, out, ">Home</a>")
	assert.Contains(t, out, ">Docs</a>")
	assert.Equal(t, 2, strings.Count(out, "<li>"))
}

func TestNavigationActiveItem(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{
		Items: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Docs", Href: "/docs", Active: true},
		},
	}))

	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))

	links := strings.Split(out, "<li>")
	assert.Len(t, links, 3)
	home, docs := links[1], links[2]

	// The item bundle carries hover:bg-gray-100, so match the active
	// background with its leading space to tell the two apart.
	assert.NotContains(t, home, " bg-gray-100")
	assert.NotContains(t, home, `aria-current`)
	assert.Contains(t, docs, " bg-gray-100")
	assert.Contains(t, docs, `aria-current="page"`)
}

// The active bundle layers on top of the item bundle without displacing
// it, so shared-family classes like the item's text size survive.
func TestNavigationActiveKeepsItemClasses(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{
		Items: []NavItem{{Label: "Docs", Href: "/docs", Active: true}},
	}))

	assert.Contains(t, out, "text-sm")
	assert.Contains(t, out, "px-3")
	assert.Contains(t, out, " bg-gray-100")
}

func TestNavigationBrand(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{
		Brand: Text(TextProps{Content: "tailkit", Tag: "span"}),
		Items: []NavItem{{Label: "Home", Href: "/"}},
	}))

	assert.Contains(t, out, "<span>tailkit</span>")
	assert.Contains(t, out, "font-semibold")
}

func TestNavigationVertical(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{Vertical: true}))

	assert.Contains(t, out, "flex-col")
	assert.Contains(t, out, "items-stretch")
}

func TestNavigationCollapsibleToggle(t *testing.T) {
	t.Parallel()

	expanded := render(t, Navigation(NavigationProps{ID: "site", Collapsible: true}))
	assert.Contains(t, expanded, `aria-controls="site-menu"`)
	assert.Contains(t, expanded, `aria-expanded="true"`)
	assert.Contains(t, expanded, `aria-label="Toggle navigation"`)

	// the toggle's md:hidden utility stays either way; the bare hidden
	// class on the menu is what collapsing adds
	assert.NotContains(t, expanded, ` hidden"`)

	collapsed := render(t, Navigation(NavigationProps{ID: "site", Collapsible: true, Collapsed: true}))
	assert.Contains(t, collapsed, `aria-expanded="false"`)
	assert.Contains(t, collapsed, ` hidden"`)
}

func TestNavigationNotCollapsibleHasNoToggle(t *testing.T) {
	t.Parallel()

	out := render(t, Navigation(NavigationProps{}))
	assert.NotContains(t, out, "Toggle navigation")
}
