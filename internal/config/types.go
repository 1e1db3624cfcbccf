package config

import (
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// ThemeConfig is the root of a theme document. A theme file overrides
// variant, size, and base bundles on top of the built-in defaults; bundles
// it does not mention keep their default classes.
type ThemeConfig struct {
	Version     string                     `yaml:"version" validate:"required,semver"`
	Name        string                     `yaml:"name" validate:"required,min=1,max=100"`
	Description string                     `yaml:"description,omitempty"`
	Components  map[string]ComponentConfig `yaml:"components,omitempty" validate:"omitempty,dive,keys,oneof=button input alert,endkeys"`
	Base        map[string][]string        `yaml:"base,omitempty"`
}

// ComponentConfig holds the bundle overrides for a single component.
// Variants replace visual variants (primary, error, success, ...); Sizes
// replace the size scale. Alerts have no size scale, so sizes on an alert
// entry are rejected during validation.
type ComponentConfig struct {
	Variants map[string][]string `yaml:"variants,omitempty"`
	Sizes    map[string][]string `yaml:"sizes,omitempty"`
}

// Theme materializes the overrides onto a fresh copy of the default theme.
// The receiver may be nil, in which case the default theme is returned
// unchanged.
func (c *ThemeConfig) Theme() tailwind.Theme {
	theme := tailwind.DefaultTheme()
	if c == nil {
		return theme
	}

	theme.Name = c.Name

	for component, overrides := range c.Components {
		variantGroup, sizeGroup := componentGroups(component)
		if variantGroup == "" {
			continue
		}
		for variant, fragments := range overrides.Variants {
			theme.Variants.Register(variantGroup, variant, fragments)
		}
		if sizeGroup == "" {
			continue
		}
		for size, fragments := range overrides.Sizes {
			theme.Variants.Register(sizeGroup, size, fragments)
		}
	}

	for bundle, fragments := range c.Base {
		theme.Variants.Register(tailwind.GroupBase, bundle, fragments)
	}

	return theme
}

func componentGroups(component string) (variants, sizes string) {
	switch component {
	case "button":
		return tailwind.GroupButton, tailwind.GroupButtonSize
	case "input":
		return tailwind.GroupInput, tailwind.GroupInputSize
	case "alert":
		return tailwind.GroupAlert, ""
	default:
		return "", ""
	}
}
