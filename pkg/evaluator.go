package booleval

import "fmt"

// MaxArgCount is the number of variables addressable by a single uppercase
// letter, A through Z.
const MaxArgCount = 'Z' - 'A' + 1

// Env binds variable names to the declared argument bits.
type Env map[string]bool

// NewEnv binds the i-th argument to the i-th uppercase letter.
func NewEnv(args []bool) Env {
	if len(args) > MaxArgCount {
		panic(fmt.Sprintf("booleval: %d arguments exceed the %d addressable variables", len(args), MaxArgCount))
	}

	env := make(Env, len(args))
	for i, arg := range args {
		env[VarName(i)] = arg
	}

	return env
}

// VarName returns the variable letter bound to argument i.
func VarName(i int) string {
	return string(rune('A' + i))
}

type Evaluator struct {
	env Env
}

func NewEvaluator(env Env) *Evaluator {
	return &Evaluator{env: env}
}

// Eval reduces the program's expression against its declared arguments.
func Eval(program *Program) (bool, error) {
	return NewEvaluator(NewEnv(program.Args)).Eval(program.Expr)
}

// Eval stops at the first error. Calls to and/or evaluate every argument,
// left to right, even once the result is already decided.
func (ev *Evaluator) Eval(expr *Expr) (bool, error) {
	switch e := expr.Kind.(type) {
	case *Var:
		val, ok := ev.env[e.Ident.Name]
		if !ok {
			return false, Errorf(ErrUndefinedVar, e.Ident.Span, "`%s` is not defined", e.Ident.Name)
		}

		return val, nil
	case *App:
		return ev.call(expr, e)
	default:
		panic(fmt.Sprintf("booleval: unexpected expression kind %T", e))
	}
}

func (ev *Evaluator) call(expr *Expr, app *App) (bool, error) {
	f, ok := lookupBuiltin(app.Ident.Name)
	if !ok {
		return false, Errorf(ErrUndefinedFunc, expr.Span, "cannot call undefined function `%s`", app.Ident.Name)
	}

	if err := checkArity(f, expr, app); err != nil {
		return false, err
	}

	args := make([]bool, len(app.Args))
	for i, arg := range app.Args {
		val, err := ev.Eval(arg)
		if err != nil {
			return false, err
		}

		args[i] = val
	}

	return f.apply(args), nil
}

func checkArity(f *builtinFunc, expr *Expr, app *App) error {
	if f.arity == variadic || f.arity == len(app.Args) {
		return nil
	}

	if f.arity == 1 {
		return Errorf(ErrArity, expr.Span, "`%s` requires single argument", f.name)
	}

	return Errorf(ErrArity, expr.Span, "`%s` requires %d arguments, got %d", f.name, f.arity, len(app.Args))
}
