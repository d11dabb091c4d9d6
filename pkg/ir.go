package booleval

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// EvalFuncName is the name of the generated function taking one i1 per
// declared argument and returning the program's result.
const EvalFuncName = "eval"

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

// LLVMIRBuilder lowers a Program into an LLVM module. It reports the same
// errors as the evaluator, so a program that compiles also evaluates.
type LLVMIRBuilder struct {
	mod    *ir.Module
	block  *ir.Block
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	return &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}
}

// Build emits
//
//	define i1 @eval(i1 %A, i1 %B, ...)
//	define i32 @main()
//
// where main calls eval with the declared bits and returns the result as the
// exit code.
func (b *LLVMIRBuilder) Build(program *Program) (*ir.Module, error) {
	params := make([]*ir.Param, len(program.Args))
	for i := range program.Args {
		params[i] = ir.NewParam(VarName(i), types.I1)
	}

	eval := b.mod.NewFunc(EvalFuncName, types.I1, params...)
	for _, param := range params {
		b.values.Set(param.Name(), param)
	}

	b.block = eval.NewBlock("entry")

	result, err := b.expression(program.Expr)
	if err != nil {
		return nil, err
	}

	b.block.NewRet(result)

	b.main(eval, program.Args)

	return b.mod, nil
}

func (b *LLVMIRBuilder) main(eval *ir.Func, args []bool) {
	f := b.mod.NewFunc("main", types.I32)
	block := f.NewBlock("entry")

	callArgs := make([]value.Value, len(args))
	for i, arg := range args {
		callArgs[i] = constant.NewBool(arg)
	}

	call := block.NewCall(eval, callArgs...)
	block.NewRet(block.NewZExt(call, types.I32))
}

func (b *LLVMIRBuilder) expression(expr *Expr) (value.Value, error) {
	switch e := expr.Kind.(type) {
	case *Var:
		val, ok := b.values.Get(e.Ident.Name)
		if !ok {
			return nil, Errorf(ErrUndefinedVar, e.Ident.Span, "`%s` is not defined", e.Ident.Name)
		}

		return val, nil
	case *App:
		return b.functionCall(expr, e)
	default:
		panic(fmt.Sprintf("booleval: unexpected expression kind %T", e))
	}
}

func (b *LLVMIRBuilder) functionCall(expr *Expr, app *App) (value.Value, error) {
	f, ok := lookupBuiltin(app.Ident.Name)
	if !ok {
		return nil, Errorf(ErrUndefinedFunc, expr.Span, "cannot call undefined function `%s`", app.Ident.Name)
	}

	if err := checkArity(f, expr, app); err != nil {
		return nil, err
	}

	args := make([]value.Value, len(app.Args))
	for i, arg := range app.Args {
		val, err := b.expression(arg)
		if err != nil {
			return nil, err
		}

		args[i] = val
	}

	return f.emit(b.block, args), nil
}

// CompileIR parses src and returns the textual LLVM IR of the program.
func CompileIR(src string) (string, error) {
	program, err := Parse(src)
	if err != nil {
		return "", err
	}

	mod, err := NewLLVMIRBuilder().Build(program)
	if err != nil {
		return "", err
	}

	return mod.String(), nil
}
