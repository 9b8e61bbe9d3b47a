package calc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/parsec/expr"
)

// ErrInvalidTable is wrapped by every operator table validation error.
var ErrInvalidTable = errors.New("invalid operator table")

// Table lists precedence levels from lowest to highest precedence.
type Table struct {
	Levels []LevelSpec `yaml:"levels" toml:"levels" json:"levels"`
}

// LevelSpec describes one precedence level.
type LevelSpec struct {
	Assoc     string   `yaml:"assoc" toml:"assoc" json:"assoc"`
	Operators []string `yaml:"operators" toml:"operators" json:"operators"`
}

// DefaultTable returns the usual arithmetic precedence.
func DefaultTable() Table {
	return Table{Levels: []LevelSpec{
		{Assoc: "left", Operators: []string{"+", "-"}},
		{Assoc: "left", Operators: []string{"*", "/", "%"}},
		{Assoc: "right", Operators: []string{"^"}},
	}}
}

// LoadTable reads a table from a .yaml, .yml or .toml file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read table: %w", err)
	}

	var format string
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return Table{}, fmt.Errorf("unsupported table format %q (expected .yaml, .yml or .toml)", ext)
	}

	t, err := DecodeTable(data, format)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	logger().Infof("loaded operator table %s with %d levels", path, len(t.Levels))
	return t, nil
}

// DecodeTable decodes and validates a table in the given format
// ("yaml" or "toml").
func DecodeTable(data []byte, format string) (Table, error) {
	var t Table
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return Table{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &t)
		if err != nil {
			return Table{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Table{}, fmt.Errorf("%w: unknown key %s", ErrInvalidTable, undecoded[0])
		}
	default:
		return Table{}, fmt.Errorf("unknown table format %q", format)
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks that every level has a known associativity and at
// least one operator, and that every operator is known and used once.
func (t Table) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidTable)
	}
	seen := make(map[string]bool)
	for i, level := range t.Levels {
		if _, err := parseAssoc(level.Assoc); err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrInvalidTable, i+1, err)
		}
		if len(level.Operators) == 0 {
			return fmt.Errorf("%w: level %d has no operators", ErrInvalidTable, i+1)
		}
		for _, sym := range level.Operators {
			if _, ok := operators[sym]; !ok {
				return fmt.Errorf("%w: level %d: unknown operator %q", ErrInvalidTable, i+1, sym)
			}
			if seen[sym] {
				return fmt.Errorf("%w: operator %q appears more than once", ErrInvalidTable, sym)
			}
			seen[sym] = true
		}
	}
	return nil
}

func parseAssoc(s string) (expr.Assoc, error) {
	switch s {
	case "", "left":
		return expr.Left, nil
	case "right":
		return expr.Right, nil
	case "nonassoc", "none":
		return expr.NonAssoc, nil
	default:
		return 0, fmt.Errorf("unknown associativity %q", s)
	}
}
