package main

import (
	"github.com/spf13/cobra"
)

type serveFlags struct {
	port     string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var flags serveFlags
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the cosmic portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.port, "port", "", "listen port or address (overrides PORT)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	root.AddCommand(serve, newTimelineCmd())
	return root
}
