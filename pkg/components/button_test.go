package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func TestButtonDefaults(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Save"}))

	assert.Contains(t, out, `type="button"`)
	assert.Contains(t, out, ">Save</button>")
	assert.Contains(t, out, "inline-flex")
	assert.Contains(t, out, "bg-blue-600")
	assert.Contains(t, out, "px-4")
	assert.Contains(t, out, "text-base")
	assert.NotContains(t, out, "aria-disabled")
	assert.NotContains(t, out, "aria-busy")
}

func TestButtonVariantsAndSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		variant tailwind.ButtonVariant
		size    tailwind.Size
		want    []string
	}{
		{name: "danger sm", variant: tailwind.ButtonDanger, size: tailwind.SizeSM, want: []string{"bg-red-600", "px-3", "py-1.5"}},
		{name: "outline lg", variant: tailwind.ButtonOutline, size: tailwind.SizeLG, want: []string{"border-gray-300", "px-6", "text-lg"}},
		{name: "link", variant: tailwind.ButtonLink, want: []string{"underline", "text-blue-600"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := render(t, Button(ButtonProps{Label: "Go", Variant: tt.variant, Size: tt.size}))
			for _, class := range tt.want {
				assert.Contains(t, out, class)
			}
		})
	}
}

func TestButtonDisabled(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Save", Disabled: true}))

	assert.Contains(t, out, " disabled ")
	assert.Contains(t, out, `aria-disabled="true"`)
}

func TestButtonLoading(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Save", Loading: true}))

	assert.Contains(t, out, `aria-busy="true"`)
	assert.Contains(t, out, "animate-spin")
	assert.Contains(t, out, `aria-hidden="true"`)
}

func TestButtonFullWidth(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Save", FullWidth: true}))
	assert.Contains(t, out, "w-full")
}

func TestButtonCallerClassWinsItsFamily(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Save", Class: "bg-red-500"}))

	assert.NotContains(t, out, "bg-blue-600")
	assert.Contains(t, out, "bg-red-500")
	assert.Contains(t, out, "hover:bg-blue-700")
}

func TestButtonUnknownTypeDegradesWithWarning(t *testing.T) {
	t.Parallel()

	ctx, warnings := warnContext()
	out := renderCtx(t, ctx, Button(ButtonProps{Label: "Save", Type: "link"}))

	assert.Contains(t, out, `type="button"`)
	assert.Contains(t, *warnings, `unknown button type "link", using "button"`)
}

func TestButtonSubmitType(t *testing.T) {
	t.Parallel()

	out := render(t, Button(ButtonProps{Label: "Send", Type: "submit", ID: "send"}))

	assert.Contains(t, out, `id="send"`)
	assert.Contains(t, out, `type="submit"`)
}
