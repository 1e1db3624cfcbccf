package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
)

type renderOptions struct {
	theme string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Render one story's markup to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme to render under")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, storyID string) error {
	themes, err := loadThemes(flags.themeFiles)
	if err != nil {
		return err
	}

	builder, err := builderForTheme(themes, opts.theme)
	if err != nil {
		return err
	}

	story, err := gallery.Builtin().Get(storyID)
	if err != nil {
		return err
	}

	markup, err := gallery.Render(cmd.Context(), story, builder)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), markup)
	return nil
}
