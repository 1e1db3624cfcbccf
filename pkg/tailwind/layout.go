package tailwind

// Display selects the CSS display mode. Values match their class names.
type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInlineBlock Display = "inline-block"
	DisplayInline      Display = "inline"
	DisplayFlex        Display = "flex"
	DisplayInlineFlex  Display = "inline-flex"
	DisplayGrid        Display = "grid"
	DisplayInlineGrid  Display = "inline-grid"
	DisplayHidden      Display = "hidden"

	DefaultDisplay = DisplayBlock
)

var displayClasses = map[Display]string{
	DisplayBlock:       "block",
	DisplayInlineBlock: "inline-block",
	DisplayInline:      "inline",
	DisplayFlex:        "flex",
	DisplayInlineFlex:  "inline-flex",
	DisplayGrid:        "grid",
	DisplayInlineGrid:  "inline-grid",
	DisplayHidden:      "hidden",
}

// FlexDirection orients a flex container's main axis.
type FlexDirection string

const (
	DirectionRow        FlexDirection = "row"
	DirectionRowReverse FlexDirection = "row-reverse"
	DirectionCol        FlexDirection = "col"
	DirectionColReverse FlexDirection = "col-reverse"

	DefaultFlexDirection = DirectionRow
)

var flexDirectionClasses = map[FlexDirection]string{
	DirectionRow:        "flex-row",
	DirectionRowReverse: "flex-row-reverse",
	DirectionCol:        "flex-col",
	DirectionColReverse: "flex-col-reverse",
}

// Justify distributes children along the main axis.
type Justify string

const (
	JustifyStart   Justify = "start"
	JustifyEnd     Justify = "end"
	JustifyCenter  Justify = "center"
	JustifyBetween Justify = "between"
	JustifyAround  Justify = "around"
	JustifyEvenly  Justify = "evenly"

	DefaultJustify = JustifyStart
)

var justifyClasses = map[Justify]string{
	JustifyStart:   "justify-start",
	JustifyEnd:     "justify-end",
	JustifyCenter:  "justify-center",
	JustifyBetween: "justify-between",
	JustifyAround:  "justify-around",
	JustifyEvenly:  "justify-evenly",
}

// AlignItems positions children on the cross axis.
type AlignItems string

const (
	ItemsStart    AlignItems = "start"
	ItemsEnd      AlignItems = "end"
	ItemsCenter   AlignItems = "center"
	ItemsBaseline AlignItems = "baseline"
	ItemsStretch  AlignItems = "stretch"

	DefaultAlignItems = ItemsStretch
)

var alignItemsClasses = map[AlignItems]string{
	ItemsStart:    "items-start",
	ItemsEnd:      "items-end",
	ItemsCenter:   "items-center",
	ItemsBaseline: "items-baseline",
	ItemsStretch:  "items-stretch",
}

// FlexWrap controls line wrapping in a flex container.
type FlexWrap string

const (
	WrapWrap    FlexWrap = "wrap"
	WrapReverse FlexWrap = "wrap-reverse"
	WrapNone    FlexWrap = "nowrap"

	DefaultFlexWrap = WrapNone
)

var flexWrapClasses = map[FlexWrap]string{
	WrapWrap:    "flex-wrap",
	WrapReverse: "flex-wrap-reverse",
	WrapNone:    "flex-nowrap",
}

// LookupDisplay resolves a display mode to its class.
func LookupDisplay(d Display) (string, bool) {
	class, ok := displayClasses[d]
	return class, ok
}

// LookupFlexDirection resolves a flex direction to its class.
func LookupFlexDirection(d FlexDirection) (string, bool) {
	class, ok := flexDirectionClasses[d]
	return class, ok
}

// LookupJustify resolves a main-axis distribution to its class.
func LookupJustify(j Justify) (string, bool) {
	class, ok := justifyClasses[j]
	return class, ok
}

// LookupAlignItems resolves a cross-axis alignment to its class.
func LookupAlignItems(a AlignItems) (string, bool) {
	class, ok := alignItemsClasses[a]
	return class, ok
}

// LookupFlexWrap resolves a wrap mode to its class.
func LookupFlexWrap(w FlexWrap) (string, bool) {
	class, ok := flexWrapClasses[w]
	return class, ok
}

// LookupGap resolves a spacing step to a gap class. Auto is not a valid
// gap; the spacing scale otherwise applies unchanged.
func LookupGap(s Space) (string, bool) {
	suffix, ok := LookupSpacing(s, false)
	if !ok {
		return "", false
	}
	return "gap-" + suffix, true
}
