package booleval

// Program is a parsed source: the declared argument bits plus the root
// expression evaluated against them.
type Program struct {
	Args []bool
	Expr *Expr
}

type Expr struct {
	Kind ExprKind
	Span Span
}

// ExprKind is implemented by *Var and *App only.
type ExprKind interface {
	exprKind()
}

type Identifier struct {
	Name string
	Span Span
}

type Var struct {
	Ident Identifier
}

type App struct {
	Ident Identifier
	Args  []*Expr
}

func (*Var) exprKind() {}
func (*App) exprKind() {}

// Children returns the sub-expressions of e in evaluation order.
func (e *Expr) Children() []*Expr {
	switch k := e.Kind.(type) {
	case *App:
		return k.Args
	default:
		return nil
	}
}

// Walk visits e and its descendants depth first, parents before children.
// Returning false from fn skips the node's children.
func Walk(e *Expr, fn func(e *Expr, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e *Expr, depth int, fn func(e *Expr, depth int) bool) {
	if !fn(e, depth) {
		return
	}

	for _, child := range e.Children() {
		walk(child, depth+1, fn)
	}
}
