package tailwind

// Space is one step on the shared margin/padding scale. Values mirror the
// Tailwind numeric scale (rem quarters) plus the pixel step and, for
// margins only, auto.
type Space string

const (
	SpaceAuto Space = "auto"

	// DefaultSpace is substituted when a set spacing value is unrecognized.
	DefaultSpace Space = "0"
)

// spacingScale lists every discrete step in ascending order. The slice
// doubles as documentation of the supported scale; validity checks go
// through the derived set below.
var spacingScale = []Space{
	"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4",
	"5", "6", "7", "8", "9", "10", "11", "12", "14", "16",
	"20", "24", "28", "32", "36", "40", "44", "48", "52", "56",
	"60", "64", "72", "80", "96",
}

var spacingSet = func() map[Space]struct{} {
	set := make(map[Space]struct{}, len(spacingScale))
	for _, s := range spacingScale {
		set[s] = struct{}{}
	}
	return set
}()

// SpacingScale returns the supported steps in ascending order.
func SpacingScale() []Space {
	scale := make([]Space, len(spacingScale))
	copy(scale, spacingScale)
	return scale
}

// LookupSpacing validates a scale step and returns its class suffix.
// Auto is only valid for margins; callers pass allowAuto accordingly.
func LookupSpacing(s Space, allowAuto bool) (string, bool) {
	if s == SpaceAuto {
		if allowAuto {
			return string(s), true
		}
		return "", false
	}
	if _, ok := spacingSet[s]; ok {
		return string(s), true
	}
	return "", false
}

// Breakpoint is a responsive prefix. The zero value applies at every width.
type Breakpoint string

const (
	BreakpointNone Breakpoint = ""
	BreakpointSM   Breakpoint = "sm"
	BreakpointMD   Breakpoint = "md"
	BreakpointLG   Breakpoint = "lg"
	BreakpointXL   Breakpoint = "xl"
	Breakpoint2XL  Breakpoint = "2xl"
)

// breakpointOrder fixes emission order for responsive fragments, mirroring
// the mobile-first cascade.
var breakpointOrder = []Breakpoint{
	BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL, Breakpoint2XL,
}

var breakpointSet = map[Breakpoint]struct{}{
	BreakpointSM:  {},
	BreakpointMD:  {},
	BreakpointLG:  {},
	BreakpointXL:  {},
	Breakpoint2XL: {},
}

// Valid reports whether b is a known responsive prefix. The zero value is
// valid and means unprefixed.
func (b Breakpoint) Valid() bool {
	if b == BreakpointNone {
		return true
	}
	_, ok := breakpointSet[b]
	return ok
}

// Apply prefixes class with the breakpoint, or returns it unchanged for
// the zero breakpoint.
func (b Breakpoint) Apply(class string) string {
	if b == BreakpointNone {
		return class
	}
	return string(b) + ":" + class
}

// Edges assigns scale steps per direction. All applies to every edge; X and
// Y cover the horizontal and vertical pairs. Unset fields emit nothing.
type Edges struct {
	All    Space `json:"all,omitempty"`
	X      Space `json:"x,omitempty"`
	Y      Space `json:"y,omitempty"`
	Top    Space `json:"top,omitempty"`
	Right  Space `json:"right,omitempty"`
	Bottom Space `json:"bottom,omitempty"`
	Left   Space `json:"left,omitempty"`
}

// IsZero reports whether no edge is set.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// edgeSuffixes pairs each edge with its class infix, in emission order.
type edgeValue struct {
	infix string
	space Space
}

func (e Edges) values() []edgeValue {
	return []edgeValue{
		{"", e.All},
		{"x", e.X},
		{"y", e.Y},
		{"t", e.Top},
		{"r", e.Right},
		{"b", e.Bottom},
		{"l", e.Left},
	}
}

// Spacing bundles margin and padding edges for one breakpoint.
type Spacing struct {
	Margin  Edges `json:"margin,omitempty"`
	Padding Edges `json:"padding,omitempty"`
}

// IsZero reports whether neither margin nor padding is set.
func (s Spacing) IsZero() bool {
	return s.Margin.IsZero() && s.Padding.IsZero()
}

// classes emits margin then padding fragments, prefixed with bp when set.
// Invalid steps are reported through warn and replaced with DefaultSpace;
// auto stays margin-only.
func (s Spacing) classes(bp Breakpoint, warn WarnFunc) []string {
	var out []string
	out = appendEdgeClasses(out, "m", s.Margin, true, bp, warn)
	out = appendEdgeClasses(out, "p", s.Padding, false, bp, warn)
	return out
}

func appendEdgeClasses(out []string, kind string, edges Edges, allowAuto bool, bp Breakpoint, warn WarnFunc) []string {
	for _, ev := range edges.values() {
		if ev.space == "" {
			continue
		}
		suffix, ok := LookupSpacing(ev.space, allowAuto)
		if !ok {
			warn("unknown spacing step %q for %s%s, using %q", ev.space, kind, ev.infix, DefaultSpace)
			suffix = string(DefaultSpace)
		}
		out = append(out, bp.Apply(kind+ev.infix+"-"+suffix))
	}
	return out
}
