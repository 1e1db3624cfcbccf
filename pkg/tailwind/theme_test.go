package tailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantRegistryRegisterAndGet(t *testing.T) {
	r := NewVariantRegistry()
	r.Register("badge", "new", []string{"bg-purple-100", "text-purple-800"})

	bundle, ok := r.Get("badge", "new")
	require.True(t, ok)
	assert.Equal(t, []string{"bg-purple-100", "text-purple-800"}, bundle)

	_, ok = r.Get("badge", "missing")
	assert.False(t, ok)
	_, ok = r.Get("missing-group", "new")
	assert.False(t, ok)
}

func TestVariantRegistryReplacesOnReRegister(t *testing.T) {
	r := NewVariantRegistry()
	r.Register("badge", "new", []string{"bg-purple-100"})
	r.Register("badge", "new", []string{"bg-teal-100"})

	bundle, ok := r.Get("badge", "new")
	require.True(t, ok)
	assert.Equal(t, []string{"bg-teal-100"}, bundle)
}

func TestVariantRegistryCopiesBundles(t *testing.T) {
	src := []string{"bg-purple-100"}
	r := NewVariantRegistry()
	r.Register("badge", "new", src)

	src[0] = "bg-mutated"
	bundle, ok := r.Get("badge", "new")
	require.True(t, ok)
	assert.Equal(t, []string{"bg-purple-100"}, bundle, "Register must copy its input")

	bundle[0] = "bg-mutated"
	again, _ := r.Get("badge", "new")
	assert.Equal(t, []string{"bg-purple-100"}, again, "Get must hand out copies")
}

func TestVariantRegistryNamesSorted(t *testing.T) {
	r := NewVariantRegistry()
	r.Register("badge", "warning", nil)
	r.Register("badge", "info", nil)
	r.Register("badge", "success", nil)

	assert.Equal(t, []string{"info", "success", "warning"}, r.Names("badge"))
	assert.Empty(t, r.Names("missing"))
}

func TestVariantRegistryGroupsSorted(t *testing.T) {
	r := NewVariantRegistry()
	r.Register("input", "default", nil)
	r.Register("button", "primary", nil)

	assert.Equal(t, []string{"button", "input"}, r.Groups())
}

func TestDefaultThemeRegistersExpectedBundles(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	assert.ElementsMatch(t,
		[]string{"danger", "ghost", "link", "outline", "primary", "secondary", "success", "warning"},
		theme.Variants.Names(GroupButton))
	assert.ElementsMatch(t, []string{"sm", "md", "lg"}, theme.Variants.Names(GroupButtonSize))
	assert.ElementsMatch(t, []string{"default", "error", "success"}, theme.Variants.Names(GroupInput))
	assert.ElementsMatch(t, []string{"error", "info", "success", "warning"}, theme.Variants.Names(GroupAlert))

	for _, base := range []string{"button", "input", "alert", "card", "modal-panel", "nav-item", "dropdown-menu", "form-label"} {
		_, ok := theme.Variants.Get(GroupBase, base)
		assert.True(t, ok, "base bundle %q must exist", base)
	}
}

func TestThemeNormalize(t *testing.T) {
	theme := Theme{}.Normalize()

	assert.Equal(t, "default", theme.Name)
	require.NotNil(t, theme.Variants)
	_, ok := theme.Variants.Get(GroupButton, string(ButtonPrimary))
	assert.True(t, ok)
}
