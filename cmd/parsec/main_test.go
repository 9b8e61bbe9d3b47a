package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcArguments(t *testing.T) {
	out, err := execute(newCalcCmd(), "", "2", "*", "(3", "+", "4)")
	require.NoError(t, err)
	require.Equal(t, "14\n", out)
}

func TestCalcStdin(t *testing.T) {
	out, err := execute(newCalcCmd(), "1 + 1\n\n2 ^ 10\n1 +\n", "--format", "line")
	require.EqualError(t, err, "1 of 3 expressions failed")
	require.Equal(t, "ok\t\t2\nok\t\t1024\nerror\t1:3\texpected end of input, found '+'\n", out)
}

func TestCalcTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.toml")
	table := "[[levels]]\nassoc = \"left\"\noperators = [\"^\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	out, err := execute(newCalcCmd(), "", "-t", path, "2^3^2")
	require.NoError(t, err)
	require.Equal(t, "64\n", out)
}

func TestCalcUnknownFormat(t *testing.T) {
	_, err := execute(newCalcCmd(), "", "-f", "xml", "1")
	require.EqualError(t, err, "unknown format: xml")
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.calc")
	require.NoError(t, os.WriteFile(path, []byte("# totals\n1 + 2\n3 *\n"), 0o644))

	out, err := execute(newCheckCmd(), "", "--no-color", path)
	require.EqualError(t, err, path+": 1 lines failed")
	require.Equal(t, path+":3:3: error: expected end of input, found '*'\n    3 *\n      ^\n", out)

	out, _ = execute(newCheckCmd(), "", "-a", "-f", "line", path)
	require.Equal(t, "ok\t"+path+"\t3\nerror\t"+path+":3:3\texpected end of input, found '*'\n", out)
}

func TestCheckMissingFile(t *testing.T) {
	_, err := execute(newCheckCmd(), "", filepath.Join(t.TempDir(), "missing.calc"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
