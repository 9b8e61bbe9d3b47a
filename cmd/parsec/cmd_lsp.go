package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/lsp"
)

func newLSPCmd() *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCalculator(tablePath)
			if err != nil {
				return err
			}
			server := lsp.NewServer(c, version)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "operator table (.yaml, .yml or .toml)")

	return cmd
}
