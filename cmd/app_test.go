package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexpr-lang/lexpr/internal/exprerrors"
	"github.com/lexpr-lang/lexpr/internal/interpreter"
	"github.com/lexpr-lang/lexpr/internal/parser"
)

func TestMainRunFile(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(interpreter.NewInterpreter())

	code := app.Main([]string{scriptFile(t, `1 + 2 * 3`)})

	assert.Equal(t, 0, code)
	assert.Equal(t, "7\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestMainRunFileError(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(interpreter.NewInterpreter())

	code := app.Main([]string{scriptFile(t, `1 +`)})

	assert.Equal(t, 64, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "ERROR [line 1, column 4] parse error at end: expected expression.")
}

func TestMainUsage(t *testing.T) {
	t.Parallel()

	app, _, stderr := newTestApp(interpreter.NewInterpreter())

	code := app.Main([]string{"one.lexpr", "two.lexpr"})

	assert.Equal(t, 64, code)
	assert.Contains(t, stderr.String(), "Usage: lexpr [script]")
}

func TestMainRecoversPanic(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(panickyInterpreter{})

	code := app.Main([]string{scriptFile(t, `1 + 2`)})

	assert.Equal(t, 70, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "FATAL panic: kaboom")
}

func newTestApp(eval interpreter.Interpreter) (*App, *strings.Builder, *strings.Builder) {
	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	app := &App{
		stdout:      stdout,
		reporter:    exprerrors.NewErrReporter(stderr),
		interpreter: eval,
	}
	return app, stdout, stderr
}

func scriptFile(t *testing.T, input string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.lexpr")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	return path
}

type panickyInterpreter struct{}

func (panickyInterpreter) Interpret(parser.Expr) (string, error) {
	panic("kaboom")
}

func (panickyInterpreter) Evaluate(parser.Expr) (interpreter.Value, error) {
	panic("kaboom")
}

var _ interpreter.Interpreter = panickyInterpreter{}
