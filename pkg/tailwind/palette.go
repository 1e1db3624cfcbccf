package tailwind

// Color is a semantic palette slot. Slots map to concrete utility classes
// per role (text, background, border) through the lookup tables below, so
// components never hard-code raw color scales.
type Color string

const (
	ColorPrimary     Color = "primary"
	ColorSecondary   Color = "secondary"
	ColorSuccess     Color = "success"
	ColorDanger      Color = "danger"
	ColorWarning     Color = "warning"
	ColorInfo        Color = "info"
	ColorLight       Color = "light"
	ColorDark        Color = "dark"
	ColorWhite       Color = "white"
	ColorMuted       Color = "muted"
	ColorTransparent Color = "transparent"
)

// Defaults used when a set value fails validation.
const (
	DefaultTextColor       = ColorDark
	DefaultBackgroundColor = ColorWhite
	DefaultBorderColor     = ColorLight
)

var textColorClasses = map[Color]string{
	ColorPrimary:     "text-blue-600",
	ColorSecondary:   "text-gray-600",
	ColorSuccess:     "text-green-600",
	ColorDanger:      "text-red-600",
	ColorWarning:     "text-yellow-500",
	ColorInfo:        "text-cyan-600",
	ColorLight:       "text-gray-400",
	ColorDark:        "text-gray-900",
	ColorWhite:       "text-white",
	ColorMuted:       "text-gray-500",
	ColorTransparent: "text-transparent",
}

var backgroundColorClasses = map[Color]string{
	ColorPrimary:     "bg-blue-600",
	ColorSecondary:   "bg-gray-600",
	ColorSuccess:     "bg-green-600",
	ColorDanger:      "bg-red-600",
	ColorWarning:     "bg-yellow-500",
	ColorInfo:        "bg-cyan-600",
	ColorLight:       "bg-gray-100",
	ColorDark:        "bg-gray-900",
	ColorWhite:       "bg-white",
	ColorMuted:       "bg-gray-200",
	ColorTransparent: "bg-transparent",
}

var borderColorClasses = map[Color]string{
	ColorPrimary:     "border-blue-600",
	ColorSecondary:   "border-gray-600",
	ColorSuccess:     "border-green-500",
	ColorDanger:      "border-red-500",
	ColorWarning:     "border-yellow-400",
	ColorInfo:        "border-cyan-500",
	ColorLight:       "border-gray-200",
	ColorDark:        "border-gray-800",
	ColorWhite:       "border-white",
	ColorMuted:       "border-gray-300",
	ColorTransparent: "border-transparent",
}

// LookupTextColor resolves a palette slot to its text color class.
func LookupTextColor(c Color) (string, bool) {
	class, ok := textColorClasses[c]
	return class, ok
}

// LookupBackgroundColor resolves a palette slot to its background class.
func LookupBackgroundColor(c Color) (string, bool) {
	class, ok := backgroundColorClasses[c]
	return class, ok
}

// LookupBorderColor resolves a palette slot to its border color class.
func LookupBorderColor(c Color) (string, bool) {
	class, ok := borderColorClasses[c]
	return class, ok
}
