package test

import (
	"fmt"
	"math/rand"
	"strings"
)

var funcs = []string{"not", "and", "or"}

// GetRandomBits returns n space separated bits.
func GetRandomBits(n int) string {
	bits := make([]string, n)
	for i := range bits {
		bits[i] = fmt.Sprint(rand.Intn(2))
	}

	return strings.Join(bits, " ")
}

// GetRandomExpr builds a well formed expression of roughly size calls over the
// first vars variables. vars must be positive.
func GetRandomExpr(size, vars int) string {
	var expr strings.Builder
	writeExpr(&expr, size, vars)

	return expr.String()
}

// GetRandomProgram declares vars random bits followed by a random expression.
func GetRandomProgram(size, vars int) string {
	if vars == 0 {
		return "0 and()"
	}

	return fmt.Sprintf("%d %s %s", vars, GetRandomBits(vars), GetRandomExpr(size, vars))
}

func writeExpr(b *strings.Builder, budget, vars int) int {
	if budget <= 0 || rand.Intn(3) == 0 {
		b.WriteByte(byte('A' + rand.Intn(vars)))
		return budget
	}

	name := funcs[rand.Intn(len(funcs))]
	argc := 1
	if name != "not" {
		argc = rand.Intn(4)
	}

	b.WriteString(name)
	b.WriteByte('(')

	budget--
	for i := 0; i < argc; i++ {
		if i > 0 {
			b.WriteString(", ")
		}

		budget = writeExpr(b, budget, vars)
	}

	b.WriteByte(')')
	return budget
}
