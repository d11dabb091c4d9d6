package booleval

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
)

// variadic marks a builtin that accepts any number of arguments.
const variadic = -1

type builtinFunc struct {
	name  string
	arity int

	// apply receives every argument already evaluated, left to right.
	apply func(args []bool) bool

	// emit lowers a call whose arguments are already lowered into block.
	emit func(block *ir.Block, args []value.Value) value.Value
}

var builtins = map[string]*builtinFunc{}

func init() {
	defineBuiltin(&builtinFunc{
		name:  "not",
		arity: 1,
		apply: builtinNot,
		emit: func(block *ir.Block, args []value.Value) value.Value {
			return block.NewXor(args[0], constant.True)
		},
	})
	defineBuiltin(&builtinFunc{
		name:  "and",
		arity: variadic,
		apply: builtinAnd,
		emit: func(block *ir.Block, args []value.Value) value.Value {
			return emitFold(block, constant.True, args, func(x, y value.Value) value.Value {
				return block.NewAnd(x, y)
			})
		},
	})
	defineBuiltin(&builtinFunc{
		name:  "or",
		arity: variadic,
		apply: builtinOr,
		emit: func(block *ir.Block, args []value.Value) value.Value {
			return emitFold(block, constant.False, args, func(x, y value.Value) value.Value {
				return block.NewOr(x, y)
			})
		},
	})
}

func defineBuiltin(f *builtinFunc) {
	builtins[f.name] = f
}

func lookupBuiltin(name string) (*builtinFunc, bool) {
	f, ok := builtins[name]
	return f, ok
}

func builtinNot(args []bool) bool {
	return !args[0]
}

func builtinAnd(args []bool) bool {
	acc := true
	for _, arg := range args {
		acc = acc && arg
	}

	return acc
}

func builtinOr(args []bool) bool {
	acc := false
	for _, arg := range args {
		acc = acc || arg
	}

	return acc
}

// emitFold starts from the identity so that zero arguments lower to a constant.
func emitFold(block *ir.Block, identity value.Value, args []value.Value, op func(x, y value.Value) value.Value) value.Value {
	if len(args) == 0 {
		return identity
	}

	acc := args[0]
	for _, arg := range args[1:] {
		acc = op(acc, arg)
	}

	return acc
}
