package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme file from disk, validates it, and returns the
// resulting model.
func ParseThemeFile(path string) (*ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tailkiterrors.NewParseError(path, 0, err)
	}

	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, tailkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
