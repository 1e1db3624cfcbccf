package tailwind

// BorderWidth is the border width scale. "1" maps to the bare border
// class, matching Tailwind's one-pixel shorthand.
type BorderWidth string

const (
	BorderWidth0 BorderWidth = "0"
	BorderWidth1 BorderWidth = "1"
	BorderWidth2 BorderWidth = "2"
	BorderWidth4 BorderWidth = "4"
	BorderWidth8 BorderWidth = "8"

	DefaultBorderWidth = BorderWidth1
)

var borderWidthClasses = map[BorderWidth]string{
	BorderWidth0: "border-0",
	BorderWidth1: "border",
	BorderWidth2: "border-2",
	BorderWidth4: "border-4",
	BorderWidth8: "border-8",
}

// BorderStyle is the border line style.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderNone   BorderStyle = "none"

	DefaultBorderStyle = BorderSolid
)

var borderStyleClasses = map[BorderStyle]string{
	BorderSolid:  "border-solid",
	BorderDashed: "border-dashed",
	BorderDotted: "border-dotted",
	BorderDouble: "border-double",
	BorderNone:   "border-none",
}

// Radius is the corner rounding scale.
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusSM   Radius = "sm"
	RadiusBase Radius = "base"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusXL   Radius = "xl"
	Radius2XL  Radius = "2xl"
	Radius3XL  Radius = "3xl"
	RadiusFull Radius = "full"

	DefaultRadius = RadiusBase
)

var radiusClasses = map[Radius]string{
	RadiusNone: "rounded-none",
	RadiusSM:   "rounded-sm",
	RadiusBase: "rounded",
	RadiusMD:   "rounded-md",
	RadiusLG:   "rounded-lg",
	RadiusXL:   "rounded-xl",
	Radius2XL:  "rounded-2xl",
	Radius3XL:  "rounded-3xl",
	RadiusFull: "rounded-full",
}

// Shadow is the box shadow scale.
type Shadow string

const (
	ShadowNone  Shadow = "none"
	ShadowSM    Shadow = "sm"
	ShadowBase  Shadow = "base"
	ShadowMD    Shadow = "md"
	ShadowLG    Shadow = "lg"
	ShadowXL    Shadow = "xl"
	Shadow2XL   Shadow = "2xl"
	ShadowInner Shadow = "inner"

	DefaultShadow = ShadowBase
)

var shadowClasses = map[Shadow]string{
	ShadowNone:  "shadow-none",
	ShadowSM:    "shadow-sm",
	ShadowBase:  "shadow",
	ShadowMD:    "shadow-md",
	ShadowLG:    "shadow-lg",
	ShadowXL:    "shadow-xl",
	Shadow2XL:   "shadow-2xl",
	ShadowInner: "shadow-inner",
}

// LookupBorderWidth resolves a width step to its class.
func LookupBorderWidth(w BorderWidth) (string, bool) {
	class, ok := borderWidthClasses[w]
	return class, ok
}

// LookupBorderStyle resolves a line style to its class.
func LookupBorderStyle(s BorderStyle) (string, bool) {
	class, ok := borderStyleClasses[s]
	return class, ok
}

// LookupRadius resolves a rounding step to its class.
func LookupRadius(r Radius) (string, bool) {
	class, ok := radiusClasses[r]
	return class, ok
}

// LookupShadow resolves a shadow step to its class.
func LookupShadow(s Shadow) (string, bool) {
	class, ok := shadowClasses[s]
	return class, ok
}
