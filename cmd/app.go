package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/lexpr-lang/lexpr/internal/exprerrors"
	"github.com/lexpr-lang/lexpr/internal/interpreter"
	"github.com/lexpr-lang/lexpr/internal/parser"
	"github.com/lexpr-lang/lexpr/internal/scanner"
)

type App struct {
	err         error
	stdout      io.Writer
	reporter    exprerrors.ErrReporter
	interpreter interpreter.Interpreter
}

func NewApp() *App {
	return &App{
		stdout:      os.Stdout,
		reporter:    exprerrors.NewErrReporter(os.Stderr),
		interpreter: interpreter.NewInterpreter(),
	}
}

func (app *App) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *App) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reporter.ReportPanic(fmt.Errorf("panic: %v", r))
			code = 70
		}
	}()

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = errors.New("Usage: lexpr [script]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *App) resetError() {
	app.err = nil
}

func (app *App) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = app.run(line)
		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *App) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *App) run(input string) error {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return err
	}

	p := parser.NewParser(tokens)
	expr, err := p.Parse()
	if err != nil {
		return err
	}

	return app.interpret(expr)
}

func (app *App) interpret(expr parser.Expr) error {
	out, err := app.interpreter.Interpret(expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, out)
	return nil
}
