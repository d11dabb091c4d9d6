package booleval

// SymbolTable holds what a name may refer to when a program is checked.
type SymbolTable struct {
	Variables map[string]bool
	Functions map[string]*builtinFunc
	Errors    []*Error
}

func NewSymbolTable(args []bool) *SymbolTable {
	return &SymbolTable{
		Variables: NewEnv(args),
		Functions: builtins,
	}
}

func (t *SymbolTable) AddError(err *Error) {
	for _, e := range t.Errors {
		if e.Span == err.Span && e.Message == err.Message {
			return
		}
	}

	t.Errors = append(t.Errors, err)
}

// ContextAnalyzer checks a program without evaluating it. Unlike evaluation it
// does not stop at the first problem: it reports every undefined name and bad
// arity, in source order.
type ContextAnalyzer struct {
	program *Program
}

func NewContextAnalyzer(program *Program) *ContextAnalyzer {
	return &ContextAnalyzer{program: program}
}

func (c *ContextAnalyzer) Do() []*Error {
	stab := NewSymbolTable(c.program.Args)
	Walk(c.program.Expr, func(e *Expr, _ int) bool {
		return c.analyze(stab, e)
	})

	return stab.Errors
}

func (c *ContextAnalyzer) analyze(stab *SymbolTable, expr *Expr) bool {
	switch e := expr.Kind.(type) {
	case *Var:
		if _, ok := stab.Variables[e.Ident.Name]; !ok {
			stab.AddError(Errorf(ErrUndefinedVar, e.Ident.Span, "`%s` is not defined", e.Ident.Name))
		}
	case *App:
		f, ok := stab.Functions[e.Ident.Name]
		if !ok {
			stab.AddError(Errorf(ErrUndefinedFunc, expr.Span, "cannot call undefined function `%s`", e.Ident.Name))
			break
		}

		if err := checkArity(f, expr, e); err != nil {
			stab.AddError(err.(*Error))
		}
	}

	return true
}

// Check parses src and returns every problem the analyzer finds.
func Check(src string) ([]*Error, error) {
	program, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return NewContextAnalyzer(program).Do(), nil
}
