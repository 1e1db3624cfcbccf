package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tailkit/internal/config"
	"github.com/alexisbeaulieu97/tailkit/internal/logger"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// loadThemes parses every theme file and keys the result by the theme's
// normalized name. The "default" key may be overridden by a file that
// names itself default.
func loadThemes(paths []string) (map[string]tailwind.Theme, error) {
	themes := make(map[string]tailwind.Theme, len(paths))

	for _, path := range paths {
		cfg, err := config.ParseThemeFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load theme file %s: %w", path, err)
		}

		name := themeKey(cfg.Name)
		if _, ok := themes[name]; ok {
			return nil, fmt.Errorf("duplicate theme name %q in %s", name, path)
		}
		themes[name] = cfg.Theme()
	}

	return themes, nil
}

// themeKey normalizes a display name into the selector used on the command
// line and in gallery URLs.
func themeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(key, " ", "-")
}

// builderForTheme resolves a selector against the loaded themes. Unknown
// selectors are an error that names the available choices.
func builderForTheme(themes map[string]tailwind.Theme, name string) (*tailwind.Builder, error) {
	if name == "" || name == "default" {
		if theme, ok := themes["default"]; ok {
			return tailwind.NewBuilder(tailwind.WithTheme(theme)), nil
		}
		return tailwind.Default(), nil
	}

	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(themeNames(themes), ", "))
	}
	return tailwind.NewBuilder(tailwind.WithTheme(theme)), nil
}

func themeNames(themes map[string]tailwind.Theme) []string {
	names := make([]string, 0, len(themes)+1)
	if _, ok := themes["default"]; !ok {
		names = append(names, "default")
	}
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}
