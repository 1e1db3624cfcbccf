package tailwind

// FontSize is the typographic size scale.
type FontSize string

const (
	FontSizeXS   FontSize = "xs"
	FontSizeSM   FontSize = "sm"
	FontSizeBase FontSize = "base"
	FontSizeLG   FontSize = "lg"
	FontSizeXL   FontSize = "xl"
	FontSize2XL  FontSize = "2xl"
	FontSize3XL  FontSize = "3xl"
	FontSize4XL  FontSize = "4xl"

	DefaultFontSize = FontSizeBase
)

var fontSizeClasses = map[FontSize]string{
	FontSizeXS:   "text-xs",
	FontSizeSM:   "text-sm",
	FontSizeBase: "text-base",
	FontSizeLG:   "text-lg",
	FontSizeXL:   "text-xl",
	FontSize2XL:  "text-2xl",
	FontSize3XL:  "text-3xl",
	FontSize4XL:  "text-4xl",
}

// FontWeight is the font weight scale.
type FontWeight string

const (
	WeightThin       FontWeight = "thin"
	WeightExtralight FontWeight = "extralight"
	WeightLight      FontWeight = "light"
	WeightNormal     FontWeight = "normal"
	WeightMedium     FontWeight = "medium"
	WeightSemibold   FontWeight = "semibold"
	WeightBold       FontWeight = "bold"
	WeightExtrabold  FontWeight = "extrabold"
	WeightBlack      FontWeight = "black"

	DefaultFontWeight = WeightNormal
)

var fontWeightClasses = map[FontWeight]string{
	WeightThin:       "font-thin",
	WeightExtralight: "font-extralight",
	WeightLight:      "font-light",
	WeightNormal:     "font-normal",
	WeightMedium:     "font-medium",
	WeightSemibold:   "font-semibold",
	WeightBold:       "font-bold",
	WeightExtrabold:  "font-extrabold",
	WeightBlack:      "font-black",
}

// TextAlign controls horizontal text alignment.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"

	DefaultTextAlign = AlignLeft
)

var textAlignClasses = map[TextAlign]string{
	AlignLeft:    "text-left",
	AlignCenter:  "text-center",
	AlignRight:   "text-right",
	AlignJustify: "text-justify",
}

// TextDecoration controls underline and strike styles. DecorationNone maps
// to no-underline so it can cancel an inherited decoration.
type TextDecoration string

const (
	DecorationUnderline   TextDecoration = "underline"
	DecorationOverline    TextDecoration = "overline"
	DecorationLineThrough TextDecoration = "line-through"
	DecorationNone        TextDecoration = "none"

	DefaultTextDecoration = DecorationNone
)

var textDecorationClasses = map[TextDecoration]string{
	DecorationUnderline:   "underline",
	DecorationOverline:    "overline",
	DecorationLineThrough: "line-through",
	DecorationNone:        "no-underline",
}

// TextTransform controls casing.
type TextTransform string

const (
	TransformUppercase  TextTransform = "uppercase"
	TransformLowercase  TextTransform = "lowercase"
	TransformCapitalize TextTransform = "capitalize"
	TransformNone       TextTransform = "none"

	DefaultTextTransform = TransformNone
)

var textTransformClasses = map[TextTransform]string{
	TransformUppercase:  "uppercase",
	TransformLowercase:  "lowercase",
	TransformCapitalize: "capitalize",
	TransformNone:       "normal-case",
}

// Tracking is the letter-spacing scale.
type Tracking string

const (
	TrackingTighter Tracking = "tighter"
	TrackingTight   Tracking = "tight"
	TrackingNormal  Tracking = "normal"
	TrackingWide    Tracking = "wide"
	TrackingWider   Tracking = "wider"
	TrackingWidest  Tracking = "widest"

	DefaultTracking = TrackingNormal
)

var trackingClasses = map[Tracking]string{
	TrackingTighter: "tracking-tighter",
	TrackingTight:   "tracking-tight",
	TrackingNormal:  "tracking-normal",
	TrackingWide:    "tracking-wide",
	TrackingWider:   "tracking-wider",
	TrackingWidest:  "tracking-widest",
}

// Leading is the line-height scale, named steps plus the numeric ladder.
type Leading string

const (
	LeadingNone    Leading = "none"
	LeadingTight   Leading = "tight"
	LeadingSnug    Leading = "snug"
	LeadingNormal  Leading = "normal"
	LeadingRelaxed Leading = "relaxed"
	LeadingLoose   Leading = "loose"

	DefaultLeading = LeadingNormal
)

var leadingClasses = map[Leading]string{
	LeadingNone:    "leading-none",
	LeadingTight:   "leading-tight",
	LeadingSnug:    "leading-snug",
	LeadingNormal:  "leading-normal",
	LeadingRelaxed: "leading-relaxed",
	LeadingLoose:   "leading-loose",
	"3":            "leading-3",
	"4":            "leading-4",
	"5":            "leading-5",
	"6":            "leading-6",
	"7":            "leading-7",
	"8":            "leading-8",
	"9":            "leading-9",
	"10":           "leading-10",
}

// LookupFontSize resolves a size step to its class.
func LookupFontSize(s FontSize) (string, bool) {
	class, ok := fontSizeClasses[s]
	return class, ok
}

// LookupFontWeight resolves a weight step to its class.
func LookupFontWeight(w FontWeight) (string, bool) {
	class, ok := fontWeightClasses[w]
	return class, ok
}

// LookupTextAlign resolves an alignment to its class.
func LookupTextAlign(a TextAlign) (string, bool) {
	class, ok := textAlignClasses[a]
	return class, ok
}

// LookupTextDecoration resolves a decoration to its class.
func LookupTextDecoration(d TextDecoration) (string, bool) {
	class, ok := textDecorationClasses[d]
	return class, ok
}

// LookupTextTransform resolves a transform to its class.
func LookupTextTransform(tr TextTransform) (string, bool) {
	class, ok := textTransformClasses[tr]
	return class, ok
}

// LookupTracking resolves a letter-spacing step to its class.
func LookupTracking(tr Tracking) (string, bool) {
	class, ok := trackingClasses[tr]
	return class, ok
}

// LookupLeading resolves a line-height step to its class.
func LookupLeading(l Leading) (string, bool) {
	class, ok := leadingClasses[l]
	return class, ok
}
