package booleval

import (
	"fmt"
	"strings"
)

// TreeString renders one line per node, children indented by two spaces:
//
//	APP ("and") @ 4..14
//	  VAR ("A") @ 8..9
func TreeString(expr *Expr) string {
	var out strings.Builder
	Walk(expr, func(e *Expr, depth int) bool {
		out.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&out, "%s @ %s\n", nodeLabel(e), e.Span)
		return true
	})

	return out.String()
}

func nodeLabel(e *Expr) string {
	switch k := e.Kind.(type) {
	case *Var:
		return fmt.Sprintf("VAR (%q)", k.Ident.Name)
	case *App:
		return fmt.Sprintf("APP (%q)", k.Ident.Name)
	default:
		return "?"
	}
}

// TokensString lists every token of src with its lexeme and kind.
func TokensString(src string) string {
	var out strings.Builder
	for _, tok := range Lex(src) {
		fmt.Fprintf(&out, "`%s` :: %s\n", tok.Lexeme(src), tok.Kind())
	}

	return out.String()
}
