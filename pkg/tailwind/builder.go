package tailwind

import (
	"sync"

	"github.com/alexisbeaulieu97/tailkit/pkg/memo"
)

// WarnFunc receives development-time diagnostics for unrecognized enum
// values. Builders never return errors or panic; invalid input degrades to
// the documented default and a warning.
type WarnFunc func(format string, args ...any)

// Cache capacities. Generic builders (text, container) share the larger
// cache; component builders (button, input) the smaller one.
const (
	BuilderCacheSize   = 1000
	ComponentCacheSize = 500
)

// Builder composes utility class strings from typed props. Results are
// memoized per builder, so isolated instances never share cache state.
type Builder struct {
	theme          Theme
	warn           WarnFunc
	cache          *memo.Cache[string]
	componentCache *memo.Cache[string]
}

// Option configures a Builder.
type Option func(*Builder)

// WithTheme sets the theme the builder resolves variant bundles from.
func WithTheme(theme Theme) Option {
	return func(b *Builder) { b.theme = theme }
}

// WithWarnFunc installs the diagnostic hook for invalid enum values.
func WithWarnFunc(fn WarnFunc) Option {
	return func(b *Builder) { b.warn = fn }
}

// WithCache replaces the generic builder cache.
func WithCache(c *memo.Cache[string]) Option {
	return func(b *Builder) { b.cache = c }
}

// WithComponentCache replaces the component builder cache.
func WithComponentCache(c *memo.Cache[string]) Option {
	return func(b *Builder) { b.componentCache = c }
}

// NewBuilder creates a builder with the default theme, silent warnings and
// fresh caches unless options say otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(b)
	}
	b.theme = b.theme.Normalize()
	if b.warn == nil {
		b.warn = func(string, ...any) {}
	}
	if b.cache == nil {
		b.cache = memo.New[string](BuilderCacheSize)
	}
	if b.componentCache == nil {
		b.componentCache = memo.New[string](ComponentCacheSize)
	}
	return b
}

var defaultBuilder = sync.OnceValue(func() *Builder {
	return NewBuilder()
})

// Default returns a shared builder with the built-in theme, for callers
// that do not thread their own instance. Tests should construct isolated
// builders with NewBuilder.
func Default() *Builder {
	return defaultBuilder()
}

// Theme returns the builder's normalized theme.
func (b *Builder) Theme() Theme {
	return b.theme
}

// ClearCaches discards all memoized class strings. Output is unaffected;
// only the memoized work is lost.
func (b *Builder) ClearCaches() {
	b.cache.Clear()
	b.componentCache.Clear()
}

// CacheStats returns snapshots of the generic and component cache counters.
func (b *Builder) CacheStats() (generic, component memo.Stats) {
	return b.cache.Stats(), b.componentCache.Stats()
}

func (b *Builder) warnf(format string, args ...any) {
	b.warn(format, args...)
}

// Warnf reports a diagnostic through the builder's warning hook. The
// component layer uses it for prop validation outside the class tables.
func (b *Builder) Warnf(format string, args ...any) {
	b.warn(format, args...)
}

// resolveClass maps a set enum value through its lookup table, degrading to
// fallback with a warning when the value is unrecognized. Unset values
// resolve to the empty string.
func resolveClass[T ~string](b *Builder, prop string, value, fallback T, lookup func(T) (string, bool)) string {
	if value == "" {
		return ""
	}
	if class, ok := lookup(value); ok {
		return class
	}
	b.warnf("unknown %s %q, using %q", prop, string(value), string(fallback))
	class, _ := lookup(fallback)
	return class
}

func appendClass(frags []string, class string) []string {
	if class == "" {
		return frags
	}
	return append(frags, class)
}

// bundle resolves a registry entry, degrading to fallback with a warning
// when name is not registered under group.
func (b *Builder) bundle(group, name, fallback string) []string {
	fragments, ok := b.theme.Variants.Get(group, name)
	if ok {
		return fragments
	}
	if name != fallback {
		b.warnf("unknown %s %q, using %q", group, name, fallback)
		if fragments, ok := b.theme.Variants.Get(group, fallback); ok {
			return fragments
		}
	}
	return nil
}

func (b *Builder) baseBundle(name string) []string {
	fragments, _ := b.theme.Variants.Get(GroupBase, name)
	return fragments
}

func (b *Builder) spacingFragments(frags []string, spacing Spacing, responsive map[Breakpoint]Spacing) []string {
	frags = append(frags, spacing.classes(BreakpointNone, b.warnf)...)
	for _, bp := range breakpointOrder {
		s, ok := responsive[bp]
		if !ok || s.IsZero() {
			continue
		}
		frags = append(frags, s.classes(bp, b.warnf)...)
	}
	for bp := range responsive {
		if bp == BreakpointNone || !bp.Valid() {
			b.warnf("unknown breakpoint %q, skipping its spacing", string(bp))
		}
	}
	return frags
}

// BuildTextClasses composes typography utilities from props.
func (b *Builder) BuildTextClasses(p TextProps) string {
	key := "text|" + memo.Key(p.cacheProps())
	if classes, ok := b.cache.Get(key); ok {
		return classes
	}

	var frags []string
	frags = appendClass(frags, resolveClass(b, "text size", p.Size, DefaultFontSize, LookupFontSize))
	frags = appendClass(frags, resolveClass(b, "font weight", p.Weight, DefaultFontWeight, LookupFontWeight))
	frags = appendClass(frags, resolveClass(b, "text color", p.Color, DefaultTextColor, LookupTextColor))
	frags = appendClass(frags, resolveClass(b, "text align", p.Align, DefaultTextAlign, LookupTextAlign))
	frags = appendClass(frags, resolveClass(b, "text decoration", p.Decoration, DefaultTextDecoration, LookupTextDecoration))
	frags = appendClass(frags, resolveClass(b, "text transform", p.Transform, DefaultTextTransform, LookupTextTransform))
	frags = appendClass(frags, resolveClass(b, "tracking", p.Tracking, DefaultTracking, LookupTracking))
	frags = appendClass(frags, resolveClass(b, "leading", p.Leading, DefaultLeading, LookupLeading))
	if p.Truncate {
		frags = append(frags, "truncate")
	}
	frags = b.spacingFragments(frags, p.Spacing, p.Responsive)

	classes := JoinClasses(frags, p.Class)
	b.cache.Set(key, classes)
	return classes
}

// BuildContainerClasses composes layout and surface utilities from props.
func (b *Builder) BuildContainerClasses(p ContainerProps) string {
	key := "container|" + memo.Key(p.cacheProps())
	if classes, ok := b.cache.Get(key); ok {
		return classes
	}

	var frags []string
	frags = appendClass(frags, resolveClass(b, "display", p.Display, DefaultDisplay, LookupDisplay))
	frags = appendClass(frags, resolveClass(b, "flex direction", p.Direction, DefaultFlexDirection, LookupFlexDirection))
	frags = appendClass(frags, resolveClass(b, "justify", p.Justify, DefaultJustify, LookupJustify))
	frags = appendClass(frags, resolveClass(b, "align items", p.Align, DefaultAlignItems, LookupAlignItems))
	frags = appendClass(frags, resolveClass(b, "flex wrap", p.Wrap, DefaultFlexWrap, LookupFlexWrap))
	frags = appendClass(frags, resolveClass(b, "gap", p.Gap, DefaultSpace, LookupGap))
	frags = appendClass(frags, resolveClass(b, "width", p.Width, DefaultDimension, LookupWidth))
	frags = appendClass(frags, resolveClass(b, "height", p.Height, DefaultDimension, LookupHeight))
	frags = appendClass(frags, resolveClass(b, "background", p.Background, DefaultBackgroundColor, LookupBackgroundColor))
	frags = appendClass(frags, resolveClass(b, "border width", p.BorderWidth, DefaultBorderWidth, LookupBorderWidth))
	frags = appendClass(frags, resolveClass(b, "border style", p.BorderStyle, DefaultBorderStyle, LookupBorderStyle))
	frags = appendClass(frags, resolveClass(b, "border color", p.BorderColor, DefaultBorderColor, LookupBorderColor))
	frags = appendClass(frags, resolveClass(b, "radius", p.Radius, DefaultRadius, LookupRadius))
	frags = appendClass(frags, resolveClass(b, "shadow", p.Shadow, DefaultShadow, LookupShadow))
	frags = b.spacingFragments(frags, p.Spacing, p.Responsive)

	classes := JoinClasses(frags, p.Class)
	b.cache.Set(key, classes)
	return classes
}

// BuildButtonClasses composes a themed button class string from props.
func (b *Builder) BuildButtonClasses(p ButtonProps) string {
	key := "button|" + memo.Key(p.cacheProps())
	if classes, ok := b.componentCache.Get(key); ok {
		return classes
	}

	variant := p.Variant
	if variant == "" {
		variant = DefaultButtonVariant
	}
	size := p.Size
	if size == "" {
		size = DefaultSize
	}

	frags := b.baseBundle("button")
	frags = append(frags, b.bundle(GroupButton, string(variant), string(DefaultButtonVariant))...)
	frags = append(frags, b.bundle(GroupButtonSize, string(size), string(DefaultSize))...)
	if p.FullWidth {
		frags = append(frags, "w-full")
	}

	classes := JoinClasses(frags, p.Class)
	b.componentCache.Set(key, classes)
	return classes
}

// BuildInputClasses composes a themed input class string from props.
func (b *Builder) BuildInputClasses(p InputProps) string {
	key := "input|" + memo.Key(p.cacheProps())
	if classes, ok := b.componentCache.Get(key); ok {
		return classes
	}

	variant := p.Variant
	if variant == "" {
		variant = DefaultInputVariant
	}
	size := p.Size
	if size == "" {
		size = DefaultSize
	}

	frags := b.baseBundle("input")
	frags = append(frags, b.bundle(GroupInput, string(variant), string(DefaultInputVariant))...)
	frags = append(frags, b.bundle(GroupInputSize, string(size), string(DefaultSize))...)

	classes := JoinClasses(frags, p.Class)
	b.componentCache.Set(key, classes)
	return classes
}

// BuildAlertClasses composes a themed alert class string. Alerts take the
// base bundle plus the tone bundle; callers merge their Class on top.
func (b *Builder) BuildAlertClasses(variant AlertVariant, class string) string {
	if variant == "" {
		variant = DefaultAlertVariant
	}
	key := "alert|" + memo.Key(map[string]any{
		"variant": string(variant),
		"class":   class,
	})
	if classes, ok := b.componentCache.Get(key); ok {
		return classes
	}

	frags := b.baseBundle("alert")
	frags = append(frags, b.bundle(GroupAlert, string(variant), string(DefaultAlertVariant))...)

	classes := JoinClasses(frags, class)
	b.componentCache.Set(key, classes)
	return classes
}

// BuildBaseClasses resolves a structural bundle by name and merges the
// caller's class string on top. Unknown names compose to just the caller's
// classes, so composite components degrade rather than fail.
func (b *Builder) BuildBaseClasses(name, class string) string {
	return b.BuildBundleClasses([]string{name}, class)
}

// BuildBundleClasses resolves several structural bundles in order as one
// generated sequence, then merges the caller's class string. Later bundles
// never displace earlier ones; only the caller's classes win families.
func (b *Builder) BuildBundleClasses(names []string, class string) string {
	key := "base|" + memo.Key(map[string]any{
		"names": names,
		"class": class,
	})
	if classes, ok := b.cache.Get(key); ok {
		return classes
	}

	var frags []string
	for _, name := range names {
		frags = append(frags, b.baseBundle(name)...)
	}

	classes := JoinClasses(frags, class)
	b.cache.Set(key, classes)
	return classes
}
