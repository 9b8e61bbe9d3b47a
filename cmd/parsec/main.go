package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parsec/calc"
	"github.com/dhamidi/parsec/format"
)

const version = "0.1.0"

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Parser combinator toolkit and calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCalculator builds a calculator from the table at path, or from the
// default table when path is empty.
func loadCalculator(path string) (*calc.Calculator, error) {
	table := calc.DefaultTable()
	if path != "" {
		t, err := calc.LoadTable(path)
		if err != nil {
			return nil, fmt.Errorf("load table: %w", err)
		}
		table = t
	}
	return calc.New(table)
}

func newEncoder(name string, w io.Writer, noColor bool) (format.Encoder, error) {
	switch name {
	case "text":
		return format.NewTextEncoder(w, !noColor && !color.NoColor), nil
	case "json":
		return format.NewJSONEncoder(w), nil
	case "line":
		return format.NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
