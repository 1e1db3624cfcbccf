package tailwind

import (
	"sort"
	"sync"
)

// Size is the component sizing scale shared by buttons and inputs.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"

	DefaultSize = SizeMD
)

// ButtonVariant names a button style bundle.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonSuccess   ButtonVariant = "success"
	ButtonDanger    ButtonVariant = "danger"
	ButtonWarning   ButtonVariant = "warning"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonLink      ButtonVariant = "link"

	DefaultButtonVariant = ButtonPrimary
)

// InputVariant names an input field state bundle.
type InputVariant string

const (
	InputDefault InputVariant = "default"
	InputError   InputVariant = "error"
	InputSuccess InputVariant = "success"

	DefaultInputVariant = InputDefault
)

// AlertVariant names an alert tone bundle.
type AlertVariant string

const (
	AlertSuccess AlertVariant = "success"
	AlertError   AlertVariant = "error"
	AlertWarning AlertVariant = "warning"
	AlertInfo    AlertVariant = "info"

	DefaultAlertVariant = AlertInfo
)

// Registry groups. Component variants live under their component name;
// structural bundles (wrappers, headers, menus) live under GroupBase.
const (
	GroupButton     = "button"
	GroupButtonSize = "button-size"
	GroupInput      = "input"
	GroupInputSize  = "input-size"
	GroupAlert      = "alert"
	GroupBase       = "base"
)

// VariantRegistry maps (group, name) pairs to class fragment bundles. It is
// safe for concurrent use; themes loaded from configuration register their
// overrides here.
type VariantRegistry struct {
	mu      sync.RWMutex
	bundles map[string]map[string][]string
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{bundles: make(map[string]map[string][]string)}
}

// Register stores a fragment bundle, replacing any previous bundle with the
// same group and name. The fragments are copied.
func (r *VariantRegistry) Register(group, name string, fragments []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bundles[group] == nil {
		r.bundles[group] = make(map[string][]string)
	}
	bundle := make([]string, len(fragments))
	copy(bundle, fragments)
	r.bundles[group][name] = bundle
}

// Get returns a copy of the named bundle.
func (r *VariantRegistry) Get(group, name string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bundle, ok := r.bundles[group][name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(bundle))
	copy(out, bundle)
	return out, true
}

// Names returns the sorted bundle names registered under group.
func (r *VariantRegistry) Names(group string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bundles[group]))
	for name := range r.bundles[group] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Groups returns the sorted group names with at least one bundle.
func (r *VariantRegistry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]string, 0, len(r.bundles))
	for group := range r.bundles {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

// Theme carries a named variant registry. The zero value is not usable;
// builders normalize a nil registry to the default theme's.
type Theme struct {
	Name     string
	Variants *VariantRegistry
}

// Normalize returns the theme with a populated registry, substituting the
// defaults when none is set.
func (t Theme) Normalize() Theme {
	if t.Variants == nil {
		t.Variants = defaultRegistry()
	}
	if t.Name == "" {
		t.Name = "default"
	}
	return t
}

// DefaultTheme returns the built-in theme. Each call produces an
// independent registry so callers can layer overrides without sharing.
func DefaultTheme() Theme {
	return Theme{Name: "default", Variants: defaultRegistry()}
}

func defaultRegistry() *VariantRegistry {
	r := NewVariantRegistry()
	registerButtonBundles(r)
	registerInputBundles(r)
	registerAlertBundles(r)
	registerBaseBundles(r)
	return r
}

func registerButtonBundles(r *VariantRegistry) {
	r.Register(GroupButton, string(ButtonPrimary), []string{
		"bg-blue-600", "text-white", "hover:bg-blue-700", "focus:ring-blue-500",
	})
	r.Register(GroupButton, string(ButtonSecondary), []string{
		"bg-gray-600", "text-white", "hover:bg-gray-700", "focus:ring-gray-500",
	})
	r.Register(GroupButton, string(ButtonSuccess), []string{
		"bg-green-600", "text-white", "hover:bg-green-700", "focus:ring-green-500",
	})
	r.Register(GroupButton, string(ButtonDanger), []string{
		"bg-red-600", "text-white", "hover:bg-red-700", "focus:ring-red-500",
	})
	r.Register(GroupButton, string(ButtonWarning), []string{
		"bg-yellow-500", "text-white", "hover:bg-yellow-600", "focus:ring-yellow-400",
	})
	r.Register(GroupButton, string(ButtonOutline), []string{
		"border", "border-gray-300", "bg-white", "text-gray-700", "hover:bg-gray-50", "focus:ring-blue-500",
	})
	r.Register(GroupButton, string(ButtonGhost), []string{
		"bg-transparent", "text-gray-700", "hover:bg-gray-100", "focus:ring-gray-400",
	})
	r.Register(GroupButton, string(ButtonLink), []string{
		"bg-transparent", "text-blue-600", "underline", "hover:text-blue-700",
	})

	r.Register(GroupButtonSize, string(SizeSM), []string{"px-3", "py-1.5", "text-sm"})
	r.Register(GroupButtonSize, string(SizeMD), []string{"px-4", "py-2", "text-base"})
	r.Register(GroupButtonSize, string(SizeLG), []string{"px-6", "py-3", "text-lg"})
}

func registerInputBundles(r *VariantRegistry) {
	r.Register(GroupInput, string(InputDefault), []string{
		"border-gray-300", "text-gray-900", "placeholder-gray-400",
		"focus:border-blue-500", "focus:ring-blue-500",
	})
	r.Register(GroupInput, string(InputError), []string{
		"border-red-500", "text-red-900", "placeholder-red-300",
		"focus:border-red-500", "focus:ring-red-500",
	})
	r.Register(GroupInput, string(InputSuccess), []string{
		"border-green-500", "text-green-900",
		"focus:border-green-500", "focus:ring-green-500",
	})

	r.Register(GroupInputSize, string(SizeSM), []string{"px-2.5", "py-1.5", "text-sm"})
	r.Register(GroupInputSize, string(SizeMD), []string{"px-3", "py-2", "text-base"})
	r.Register(GroupInputSize, string(SizeLG), []string{"px-4", "py-3", "text-lg"})
}

func registerAlertBundles(r *VariantRegistry) {
	r.Register(GroupAlert, string(AlertSuccess), []string{"bg-green-50", "border-green-200", "text-green-800"})
	r.Register(GroupAlert, string(AlertError), []string{"bg-red-50", "border-red-200", "text-red-800"})
	r.Register(GroupAlert, string(AlertWarning), []string{"bg-yellow-50", "border-yellow-200", "text-yellow-800"})
	r.Register(GroupAlert, string(AlertInfo), []string{"bg-blue-50", "border-blue-200", "text-blue-800"})
}

// registerBaseBundles holds the structural skeleton of every composite
// component. Themes may override individual entries from configuration.
func registerBaseBundles(r *VariantRegistry) {
	r.Register(GroupBase, "button", []string{
		"inline-flex", "items-center", "justify-center", "rounded-md", "font-medium",
		"transition-colors", "focus:outline-none", "focus:ring-2", "focus:ring-offset-2",
		"disabled:opacity-50", "disabled:pointer-events-none",
	})
	r.Register(GroupBase, "input", []string{
		"block", "w-full", "rounded-md", "border", "shadow-sm", "transition-colors",
		"focus:outline-none", "focus:ring-1",
		"disabled:cursor-not-allowed", "disabled:bg-gray-50", "disabled:text-gray-500",
	})
	r.Register(GroupBase, "alert", []string{"rounded-md", "border", "p-4"})

	r.Register(GroupBase, "card", []string{"rounded-lg", "border", "border-gray-200", "bg-white", "shadow-sm"})
	r.Register(GroupBase, "card-hover", []string{"transition-shadow", "hover:shadow-md"})
	r.Register(GroupBase, "card-actionable", []string{"cursor-pointer", "focus:outline-none", "focus:ring-2", "focus:ring-blue-500"})
	r.Register(GroupBase, "card-header", []string{"border-b", "border-gray-200", "px-6", "py-4"})
	r.Register(GroupBase, "card-body", []string{"px-6", "py-4"})
	r.Register(GroupBase, "card-footer", []string{"border-t", "border-gray-200", "bg-gray-50", "px-6", "py-4"})

	r.Register(GroupBase, "modal-backdrop", []string{
		"fixed", "inset-0", "z-40", "bg-gray-900/50", "transition-opacity",
	})
	r.Register(GroupBase, "modal-panel", []string{
		"relative", "z-50", "w-full", "max-w-lg", "rounded-lg", "bg-white", "shadow-xl",
	})
	r.Register(GroupBase, "modal-header", []string{
		"flex", "items-center", "justify-between", "border-b", "border-gray-200", "px-6", "py-4",
	})
	r.Register(GroupBase, "modal-body", []string{"px-6", "py-4"})
	r.Register(GroupBase, "modal-footer", []string{
		"flex", "justify-end", "gap-3", "border-t", "border-gray-200", "px-6", "py-4",
	})

	r.Register(GroupBase, "nav", []string{"flex", "items-center", "gap-1"})
	r.Register(GroupBase, "nav-vertical", []string{"flex-col", "items-stretch"})
	r.Register(GroupBase, "nav-collapsed", []string{"hidden"})
	r.Register(GroupBase, "nav-brand", []string{"mr-4", "text-lg", "font-semibold", "text-gray-900"})
	r.Register(GroupBase, "nav-toggle", []string{
		"rounded-md", "p-2", "text-gray-600", "hover:bg-gray-100", "hover:text-gray-900", "md:hidden",
	})
	r.Register(GroupBase, "nav-item", []string{
		"rounded-md", "px-3", "py-2", "text-sm", "font-medium", "text-gray-600",
		"hover:bg-gray-100", "hover:text-gray-900",
	})
	r.Register(GroupBase, "nav-item-active", []string{"bg-gray-100", "text-gray-900"})

	r.Register(GroupBase, "dropdown", []string{"relative", "inline-block", "text-left"})
	r.Register(GroupBase, "dropdown-trigger", []string{
		"inline-flex", "w-full", "items-center", "justify-center", "gap-2",
		"rounded-md", "border", "border-gray-300", "bg-white", "px-4", "py-2",
		"text-sm", "font-medium", "text-gray-700", "shadow-sm", "hover:bg-gray-50",
	})
	r.Register(GroupBase, "dropdown-menu", []string{
		"absolute", "z-10", "mt-2", "w-56", "rounded-md", "bg-white", "shadow-lg",
		"ring-1", "ring-black/5", "focus:outline-none",
	})
	r.Register(GroupBase, "dropdown-option", []string{
		"block", "w-full", "px-4", "py-2", "text-left", "text-sm", "text-gray-700",
		"hover:bg-gray-100",
	})
	r.Register(GroupBase, "dropdown-option-active", []string{"bg-gray-100", "text-gray-900"})
	r.Register(GroupBase, "dropdown-option-selected", []string{"font-semibold", "text-blue-600"})

	r.Register(GroupBase, "form", []string{"space-y-4"})
	r.Register(GroupBase, "form-label", []string{"block", "text-sm", "font-medium", "text-gray-700"})
	r.Register(GroupBase, "form-error", []string{"mt-1", "text-sm", "text-red-600"})
	r.Register(GroupBase, "form-help", []string{"mt-1", "text-sm", "text-gray-500"})
}
