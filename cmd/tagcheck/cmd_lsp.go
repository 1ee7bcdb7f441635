package main

import (
	"github.com/dhamidi/tagcheck/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, globals)
			if err != nil {
				return err
			}
			server := workspace.NewLSPServer("0.1.0", cfg.Include, cfg.MarkupOptions()...)
			return server.RunStdio()
		},
	}
}
