package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/format"
)

func newCheckCmd() *cobra.Command {
	var tablePath string
	var outputFormat string
	var all bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Evaluate every line of a file and report failures",
		Long: `Evaluate every line of a file that is neither blank nor a comment
starting with '#'. Exits with a non-zero status if any line fails.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			c, err := loadCalculator(tablePath)
			if err != nil {
				return err
			}
			enc, err := newEncoder(outputFormat, cmd.OutOrStdout(), noColor)
			if err != nil {
				return err
			}

			failed := 0
			for _, line := range c.EvaluateLines(filename, string(data)) {
				if line.Err != nil {
					failed++
				} else if !all {
					continue
				}
				report := format.Report{File: filename, Input: line.Text, Value: line.Value, Err: line.Err}
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%s: %d lines failed", filename, failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "operator table (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, line)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also report lines that evaluate successfully")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
