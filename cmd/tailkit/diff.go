package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/diff"
)

type diffOptions struct {
	from string
	to   string
}

func newDiffCmd(flags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <story>",
		Short: "Diff one story's markup between two themes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "default", "Baseline theme")
	cmd.Flags().StringVar(&opts.to, "to", "", "Theme to compare against")
	cmd.MarkFlagRequired("to") //nolint:errcheck

	return cmd
}

func runDiff(cmd *cobra.Command, flags *rootFlags, opts *diffOptions, storyID string) error {
	themes, err := loadThemes(flags.themeFiles)
	if err != nil {
		return err
	}

	fromBuilder, err := builderForTheme(themes, opts.from)
	if err != nil {
		return err
	}
	toBuilder, err := builderForTheme(themes, opts.to)
	if err != nil {
		return err
	}

	story, err := gallery.Builtin().Get(storyID)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	fromMarkup, err := gallery.Render(ctx, story, fromBuilder)
	if err != nil {
		return err
	}
	toMarkup, err := gallery.Render(ctx, story, toBuilder)
	if err != nil {
		return err
	}

	// Split markup one tag per line so the diff points at the changed
	// element instead of the whole document.
	fromMarkup = strings.ReplaceAll(fromMarkup, "><", ">\n<")
	toMarkup = strings.ReplaceAll(toMarkup, "><", ">\n<")

	unified := diff.Unified([]byte(fromMarkup), []byte(toMarkup), opts.from, opts.to)
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s renders identically under %s and %s\n", storyID, opts.from, opts.to)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), unified)
	return nil
}
