// Package tailwind generates Tailwind utility class strings from typed
// props, replacing hand-assembled class literals throughout the component
// layer.
//
// # Overview
//
// The package has three layers:
//
//  1. Mapping tables - typed enums (Color, Space, FontSize, ...) resolved
//     to utility classes through Lookup* functions.
//  2. Composition - Build*Classes functions on Builder that validate,
//     resolve and merge props into one space-joined class string.
//  3. Themes - variant bundles (button primary, input error, ...) kept in
//     a VariantRegistry so configuration can restyle components without
//     touching code.
//
// # Composition rules
//
// Unset props emit nothing. Set but unrecognized values degrade to a
// documented default and report through the builder's WarnFunc; nothing in
// this package returns an error or panics. Caller-supplied classes are
// merged last and win their class family (see ClassFamily), so
//
//	b.BuildButtonClasses(ButtonProps{Variant: ButtonPrimary, Class: "bg-red-500"})
//
// yields a red button: the caller's bg- fragment displaces the generated
// one. Generated fragments never displace each other.
//
// # Memoization
//
// Every builder owns two bounded LRU caches (see pkg/memo): one for the
// generic text and container builders, a smaller one for component
// builders. Caches are accelerators only; ClearCaches never changes what
// a builder returns. Construct isolated builders in tests rather than
// sharing Default.
package tailwind
