package booleval

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Interpreter runs the whole pipeline, lex, parse and eval, over one source
// text at a time.
type Interpreter struct {
	logger *slog.Logger
}

func NewInterpreter(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Interpreter{logger: logger}
}

func (i *Interpreter) Run(src string) (bool, error) {
	program, err := i.Parse(src)
	if err != nil {
		return false, err
	}

	result, err := Eval(program)
	if err != nil {
		i.logFailure("eval", err)
		return false, err
	}

	i.logger.Debug("evaluated", slog.Bool("result", result))
	return result, nil
}

func (i *Interpreter) RunFile(filename string) (string, bool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	src := string(data)
	result, err := i.Run(src)
	return src, result, err
}

func (i *Interpreter) RunReader(reader io.Reader) (string, bool, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}

	src := string(data)
	result, err := i.Run(src)
	return src, result, err
}

func (i *Interpreter) Parse(src string) (*Program, error) {
	if i.logger.Enabled(context.Background(), slog.LevelDebug) {
		i.logger.Debug("lexed", slog.Int("tokens", len(Lex(src))))
	}

	program, err := Parse(src)
	if err != nil {
		i.logFailure("parse", err)
		return nil, err
	}

	i.logger.Debug("parsed",
		slog.Int("args", len(program.Args)),
		slog.String("span", program.Expr.Span.String()),
	)

	return program, nil
}

func (i *Interpreter) Check(src string) ([]*Error, error) {
	program, err := i.Parse(src)
	if err != nil {
		return nil, err
	}

	errs := NewContextAnalyzer(program).Do()
	i.logger.Debug("checked", slog.Int("problems", len(errs)))

	return errs, nil
}

func (i *Interpreter) CompileIR(src string) (string, error) {
	program, err := i.Parse(src)
	if err != nil {
		return "", err
	}

	mod, err := NewLLVMIRBuilder().Build(program)
	if err != nil {
		i.logFailure("compile", err)
		return "", err
	}

	i.logger.Debug("compiled", slog.Int("funcs", len(mod.Funcs)))
	return mod.String(), nil
}

func (i *Interpreter) logFailure(stage string, err error) {
	attrs := []any{slog.String("stage", stage), slog.String("error", err.Error())}
	if e, ok := AsError(err); ok {
		attrs = append(attrs, slog.String("span", e.Span.String()))
	}

	i.logger.Debug("pipeline failed", attrs...)
}
