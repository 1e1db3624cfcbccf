package tailwind

// TextProps selects typography utilities. Zero fields emit nothing; Class
// is merged last and wins its families.
type TextProps struct {
	Size       FontSize
	Weight     FontWeight
	Color      Color
	Align      TextAlign
	Decoration TextDecoration
	Transform  TextTransform
	Tracking   Tracking
	Leading    Leading
	Truncate   bool
	Spacing    Spacing
	Responsive map[Breakpoint]Spacing
	Class      string
}

func (p TextProps) cacheProps() map[string]any {
	props := map[string]any{
		"size":       string(p.Size),
		"weight":     string(p.Weight),
		"color":      string(p.Color),
		"align":      string(p.Align),
		"decoration": string(p.Decoration),
		"transform":  string(p.Transform),
		"tracking":   string(p.Tracking),
		"leading":    string(p.Leading),
		"class":      p.Class,
	}
	if p.Truncate {
		props["truncate"] = true
	}
	addSpacingProps(props, p.Spacing, p.Responsive)
	return props
}

// ContainerProps selects layout, sizing, surface and border utilities.
type ContainerProps struct {
	Display     Display
	Direction   FlexDirection
	Justify     Justify
	Align       AlignItems
	Wrap        FlexWrap
	Gap         Space
	Width       Dimension
	Height      Dimension
	Background  Color
	BorderWidth BorderWidth
	BorderStyle BorderStyle
	BorderColor Color
	Radius      Radius
	Shadow      Shadow
	Spacing     Spacing
	Responsive  map[Breakpoint]Spacing
	Class       string
}

func (p ContainerProps) cacheProps() map[string]any {
	props := map[string]any{
		"display":     string(p.Display),
		"direction":   string(p.Direction),
		"justify":     string(p.Justify),
		"align":       string(p.Align),
		"wrap":        string(p.Wrap),
		"gap":         string(p.Gap),
		"width":       string(p.Width),
		"height":      string(p.Height),
		"background":  string(p.Background),
		"borderWidth": string(p.BorderWidth),
		"borderStyle": string(p.BorderStyle),
		"borderColor": string(p.BorderColor),
		"radius":      string(p.Radius),
		"shadow":      string(p.Shadow),
		"class":       p.Class,
	}
	addSpacingProps(props, p.Spacing, p.Responsive)
	return props
}

// ButtonProps selects a themed button bundle.
type ButtonProps struct {
	Variant   ButtonVariant
	Size      Size
	FullWidth bool
	Class     string
}

func (p ButtonProps) cacheProps() map[string]any {
	props := map[string]any{
		"variant": string(p.Variant),
		"size":    string(p.Size),
		"class":   p.Class,
	}
	if p.FullWidth {
		props["fullWidth"] = true
	}
	return props
}

// InputProps selects a themed input bundle.
type InputProps struct {
	Variant InputVariant
	Size    Size
	Class   string
}

func (p InputProps) cacheProps() map[string]any {
	return map[string]any{
		"variant": string(p.Variant),
		"size":    string(p.Size),
		"class":   p.Class,
	}
}

func addSpacingProps(props map[string]any, spacing Spacing, responsive map[Breakpoint]Spacing) {
	if !spacing.IsZero() {
		props["spacing"] = spacing
	}
	if len(responsive) > 0 {
		props["responsive"] = responsive
	}
}
