package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func TestContainerDefaultsToDiv(t *testing.T) {
	t.Parallel()

	out := render(t, Container(ContainerProps{}))
	assert.Equal(t, "<div></div>", out)
}

func TestContainerRendersStructuralTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
	}{
		{name: "section", tag: "section"},
		{name: "main", tag: "main"},
		{name: "aside", tag: "aside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := render(t, Container(ContainerProps{Tag: tt.tag}))
			assert.Equal(t, "<"+tt.tag+"></"+tt.tag+">", out)
		})
	}
}

func TestContainerUnknownTagDegradesWithWarning(t *testing.T) {
	t.Parallel()

	ctx, warnings := warnContext()
	out := renderCtx(t, ctx, Container(ContainerProps{Tag: "center"}))

	assert.Equal(t, "<div></div>", out)
	assert.Contains(t, *warnings, `unknown container tag "center", using "div"`)
}

func TestContainerAppliesStyleClasses(t *testing.T) {
	t.Parallel()

	out := render(t, Container(ContainerProps{
		Style: tailwind.ContainerProps{
			Display:    tailwind.DisplayFlex,
			Direction:  tailwind.DirectionCol,
			Gap:        "4",
			Background: tailwind.ColorWhite,
			Radius:     tailwind.RadiusLG,
			Shadow:     tailwind.ShadowMD,
			Spacing:    tailwind.Spacing{Padding: tailwind.Edges{All: "6"}},
		},
	}))

	assert.Equal(t, `<div class="flex flex-col gap-4 bg-white rounded-lg shadow-md p-6"></div>`, out)
}

func TestContainerRendersChildrenInOrder(t *testing.T) {
	t.Parallel()

	out := render(t, Container(ContainerProps{Tag: "section"},
		Text(TextProps{Content: "first"}),
		nil,
		Text(TextProps{Content: "second", Tag: "span"}),
	))

	assert.Equal(t, "<section><p>first</p><span>second</span></section>", out)
}

func TestContainerRoleAndID(t *testing.T) {
	t.Parallel()

	out := render(t, Container(ContainerProps{ID: "status", Role: "status"}))
	assert.Equal(t, `<div id="status" role="status"></div>`, out)
}
