package tailwind

import "strings"

// ClassFamily returns the conflict-resolution family of a utility class:
// the first hyphen-delimited segment, computed after stripping a single
// responsive prefix. Classes without a hyphen are their own family.
//
//	ClassFamily("bg-blue-600")   = "bg"
//	ClassFamily("md:px-4")       = "px"
//	ClassFamily("hover:bg-red-500") = "hover:bg"
//	ClassFamily("underline")     = "underline"
//
// State prefixes such as hover: and focus: intentionally stay part of the
// family, so a plain override never cancels a state-scoped fragment.
func ClassFamily(class string) string {
	rest := class
	if idx := strings.IndexByte(rest, ':'); idx > 0 {
		if Breakpoint(rest[:idx]).Valid() {
			rest = rest[idx+1:]
		}
	}
	if idx := strings.IndexByte(rest, '-'); idx > 0 {
		return rest[:idx]
	}
	return rest
}

// MergeClasses reconciles generated fragments with a caller-supplied class
// string. Caller fragments win their family: any generated fragment whose
// family also appears in the caller's classes is dropped, then the caller's
// classes are appended. Generated fragments never displace each other.
// Exact duplicates keep their first occurrence.
func MergeClasses(generated []string, callerClass string) []string {
	caller := strings.Fields(callerClass)
	if len(caller) == 0 {
		return dedupe(generated)
	}

	override := make(map[string]struct{}, len(caller))
	for _, class := range caller {
		override[ClassFamily(class)] = struct{}{}
	}

	merged := make([]string, 0, len(generated)+len(caller))
	for _, class := range generated {
		if _, clash := override[ClassFamily(class)]; clash {
			continue
		}
		merged = append(merged, class)
	}
	merged = append(merged, caller...)
	return dedupe(merged)
}

// JoinClasses merges and space-joins in one step.
func JoinClasses(generated []string, callerClass string) string {
	return strings.Join(MergeClasses(generated, callerClass), " ")
}

func dedupe(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" {
			continue
		}
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}
		out = append(out, class)
	}
	return out
}
