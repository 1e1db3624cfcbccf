package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/internal/tui"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse component stories in the terminal",
		Long:  `Launch the interactive story browser to preview components, switch themes, and diff rendered markup.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags) error {
	themes, err := loadThemes(flags.themeFiles)
	if err != nil {
		return err
	}

	return tui.Run(gallery.Builtin(), themes)
}
