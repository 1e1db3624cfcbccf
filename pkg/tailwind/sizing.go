package tailwind

// Dimension is a width or height value: any spacing step, a fraction of
// the parent, or one of the keyword sizes.
type Dimension string

const (
	DimensionFull   Dimension = "full"
	DimensionScreen Dimension = "screen"
	DimensionMin    Dimension = "min"
	DimensionMax    Dimension = "max"
	DimensionFit    Dimension = "fit"
	DimensionAuto   Dimension = "auto"

	DefaultDimension = DimensionAuto
)

var dimensionFractions = map[Dimension]struct{}{
	"1/2": {}, "1/3": {}, "2/3": {},
	"1/4": {}, "2/4": {}, "3/4": {},
	"1/5": {}, "2/5": {}, "3/5": {}, "4/5": {},
	"1/6": {}, "2/6": {}, "3/6": {}, "4/6": {}, "5/6": {},
}

var dimensionKeywords = map[Dimension]struct{}{
	DimensionFull: {}, DimensionScreen: {}, DimensionMin: {},
	DimensionMax: {}, DimensionFit: {}, DimensionAuto: {},
}

func validDimension(d Dimension) bool {
	if _, ok := dimensionKeywords[d]; ok {
		return true
	}
	if _, ok := dimensionFractions[d]; ok {
		return true
	}
	_, ok := spacingSet[Space(d)]
	return ok
}

// LookupWidth resolves a dimension to its width class.
func LookupWidth(d Dimension) (string, bool) {
	if !validDimension(d) {
		return "", false
	}
	return "w-" + string(d), true
}

// LookupHeight resolves a dimension to its height class.
func LookupHeight(d Dimension) (string, bool) {
	if !validDimension(d) {
		return "", false
	}
	return "h-" + string(d), true
}
