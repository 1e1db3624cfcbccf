package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	themeFiles []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tailkit",
		Short:         "Tailkit renders themed UI component stories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the story browser
			if len(args) == 0 {
				return runGallery(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringArrayVar(&flags.themeFiles, "theme-file", nil, "Path to a theme YAML file (repeatable)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
