package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailkit/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component gallery over HTTP",
		Long:  `Start a local web server that renders every story, with per-request theme switching via the ?theme query parameter.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "Address to listen on")

	return cmd
}

func runServe(flags *rootFlags, opts *serveOptions) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	themes, err := loadThemes(flags.themeFiles)
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Addr:   opts.addr,
		Themes: themes,
		Log:    log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(map[string]any{"addr": opts.addr, "theme_files": len(flags.themeFiles)}).Info("gallery server listening")
	return srv.ListenAndServe(ctx)
}
