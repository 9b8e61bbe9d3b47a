package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/comb"
	"github.com/dhamidi/parsec/format"
)

func newCalcCmd() *cobra.Command {
	var tablePath string
	var outputFormat string
	var trace bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate the expression formed by the arguments, or each non-blank
line of standard input when no arguments are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCalculator(tablePath)
			if err != nil {
				return err
			}
			enc, err := newEncoder(outputFormat, cmd.OutOrStdout(), noColor)
			if err != nil {
				return err
			}

			var inputs []string
			if len(args) > 0 {
				inputs = []string{strings.Join(args, " ")}
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := scanner.Text(); strings.TrimSpace(line) != "" {
						inputs = append(inputs, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			}

			var opts []comb.Option
			if trace {
				opts = append(opts, comb.WithTrace())
			}

			failed := 0
			for _, input := range inputs {
				value, err := c.Evaluate(input, opts...)
				if err != nil {
					failed++
				}
				if err := enc.Encode(format.Report{Input: input, Value: value, Err: err}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "operator table (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, line)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every parser attempt (needs -vv)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
