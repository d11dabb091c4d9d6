package booleval

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BufferedTokenizerMocker struct {
	buf []Token
	pos int
}

func NewBufferedTokenizerMocker(toks []Token) *BufferedTokenizerMocker {
	return &BufferedTokenizerMocker{
		buf: toks,
		pos: 0,
	}
}

func (b *BufferedTokenizerMocker) Next() (Token, bool) {
	if len(b.buf) <= b.pos {
		return Token{}, false
	}

	tok := b.buf[b.pos]
	b.pos++

	return tok, true
}

func variable(name string, start int) *Expr {
	span := NewSpan(start, start+len(name))
	return &Expr{
		Kind: &Var{Ident: Identifier{Name: name, Span: span}},
		Span: span,
	}
}

func call(name string, start, end int, args ...*Expr) *Expr {
	return &Expr{
		Kind: &App{
			Ident: Identifier{Name: name, Span: NewSpan(start, start+len(name))},
			Args:  args,
		},
		Span: NewSpan(start, end),
	}
}

func TestParser(t *testing.T) {
	cases := []struct {
		data   string
		expect *Program
	}{
		{
			"2 1 0 and(A,B)",
			&Program{
				Args: []bool{true, false},
				Expr: call("and", 6, 14, variable("A", 10), variable("B", 12)),
			},
		},
		{
			"0 and()",
			&Program{
				Args: []bool{},
				Expr: call("and", 2, 7),
			},
		},
		{
			"1 1 A",
			&Program{
				Args: []bool{true},
				Expr: variable("A", 4),
			},
		},
		{
			"3 0 0 1 or(not(A), and(B, C))",
			&Program{
				Args: []bool{false, false, true},
				Expr: call("or", 8, 29,
					call("not", 11, 17, variable("A", 15)),
					call("and", 19, 28, variable("B", 23), variable("C", 26)),
				),
			},
		},
		{
			// Names are only checked when evaluating
			"0 foo(bar, baz())",
			&Program{
				Args: []bool{},
				Expr: call("foo", 2, 17, variable("bar", 6), call("baz", 11, 16)),
			},
		},
		{
			"\n1\n0\n  not(A)\n",
			&Program{
				Args: []bool{false},
				Expr: call("not", 7, 13, variable("A", 11)),
			},
		},
	}

	for _, c := range cases {
		got, err := Parse(c.data)
		require.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got, c.data)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		data    string
		kind    ErrorKind
		span    Span
		message string
	}{
		{"27 A", ErrArgLimit, NewSpan(0, 2), "can't declare more than 26 params"},
		{"1 2 A", ErrBit, NewSpan(2, 3), "invalid bit, must be `0` or `1`"},
		{"2 1 A", ErrBit, NewSpan(4, 5), "expected next bit, instead got token of kind `Ident`"},
		{"2 1", ErrBit, NewSpan(3, 3), "expected next bit, instead got token of kind `Eof`"},
		{"0 and(A,)", ErrToken, NewSpan(8, 9), "expected token of kind `Ident`, instead got `RParen`"},
		{"0 and(A B)", ErrToken, NewSpan(8, 9), "expected token of kind in `[Comma, RParen]`, instead got `Ident`"},
		{"0 and(A", ErrToken, NewSpan(7, 7), "expected token of kind in `[Comma, RParen]`, instead got `Eof`"},
		{"0 and(", ErrToken, NewSpan(6, 6), "expected token of kind `Ident`, instead got `Eof`"},
		{"0 (A)", ErrToken, NewSpan(2, 3), "expected token of kind `Ident`, instead got `LParen`"},
		{"0 A B", ErrTrailing, NewSpan(4, 5), "expected token of kind `Eof`, instead got `Ident`"},
		{"0 A)", ErrTrailing, NewSpan(3, 4), "expected token of kind `Eof`, instead got `RParen`"},
		{"99999999999999999999999 A", ErrNumber, NewSpan(0, 23), "unparsable number"},
		{"1 00000000000000000000000000000000002 A", ErrBit, NewSpan(2, 37), "invalid bit, must be `0` or `1`"},
		{"0 @", ErrToken, NewSpan(2, 3), "expected token of kind `Ident`, instead got `ErrorUnexpected('@')`"},
		{"0 A#", ErrTrailing, NewSpan(3, 4), "expected token of kind `Eof`, instead got `ErrorUnexpected('#')`"},
		{"", ErrToken, NewSpan(0, 0), "expected token of kind `Number`, instead got `Eof`"},
		{"A", ErrToken, NewSpan(0, 1), "expected token of kind `Number`, instead got `Ident`"},
	}

	for _, c := range cases {
		got, err := Parse(c.data)
		assert.Nil(t, got, c.data)

		e, ok := AsError(err)
		if !assert.True(t, ok, c.data) {
			continue
		}

		assert.Equal(t, c.kind, e.Kind, c.data)
		assert.Equal(t, c.span, e.Span, c.data)
		assert.Equal(t, c.message, e.Message, c.data)
	}
}

func TestParserArity(t *testing.T) {
	for n := 0; n <= MaxArgCount; n++ {
		bits := make([]bool, 0, n)
		words := []string{fmt.Sprint(n)}
		for i := 0; i < n; i++ {
			bit := rand.Intn(2) == 1
			bits = append(bits, bit)

			if bit {
				words = append(words, "1")
			} else {
				words = append(words, "0")
			}
		}

		src := strings.Join(append(words, "A"), " ")

		got, err := Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, bits, got.Args, src)
	}
}

func TestParserArgLimit(t *testing.T) {
	bits := strings.Repeat(" 1", MaxArgCount+1)

	_, err := Parse(fmt.Sprintf("%d%s Z", MaxArgCount, bits[:2*MaxArgCount]))
	assert.NoError(t, err)

	_, err = Parse(fmt.Sprintf("%d%s A", MaxArgCount+1, bits))
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrArgLimit, e.Kind)
	assert.Equal(t, NewSpan(0, 2), e.Span)
}

func TestParserTokenizer(t *testing.T) {
	src := "1 0 not(A)"

	cases := []struct {
		data   []Token
		fail   bool
		expect *Program
	}{
		{
			[]Token{
				tok(TokenNumber, 0, 1),
				tok(TokenNumber, 2, 3),
				tok(TokenIdentifier, 4, 7),
				tok(TokenOpenParentheses, 7, 8),
				tok(TokenIdentifier, 8, 9),
				tok(TokenCloseParentheses, 9, 10),
				tok(TokenEOF, 10, 10),
			},
			false,
			&Program{
				Args: []bool{false},
				Expr: call("not", 4, 10, variable("A", 8)),
			},
		},
		{
			// A stream that ends without EOF is treated as if it had one
			[]Token{
				tok(TokenNumber, 0, 1),
				tok(TokenNumber, 2, 3),
				tok(TokenIdentifier, 8, 9),
			},
			false,
			&Program{
				Args: []bool{false},
				Expr: variable("A", 8),
			},
		},
		{
			[]Token{
				tok(TokenNumber, 0, 1),
				tok(TokenNumber, 2, 3),
				tok(TokenIdentifier, 4, 7),
				tok(TokenOpenParentheses, 7, 8),
				tok(TokenIdentifier, 8, 9),
			},
			true,
			nil,
		},
		{
			nil,
			true,
			nil,
		},
	}

	for _, c := range cases {
		tokenizer := NewBufferedTokenizerMocker(c.data)
		p := NewParser(src, tokenizer)

		got, err := p.Run()
		if c.fail {
			assert.Error(t, err)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestExprChildren(t *testing.T) {
	a, b := variable("A", 4), variable("B", 6)
	app := call("and", 0, 8, a, b)

	assert.Equal(t, []*Expr{a, b}, app.Children())
	assert.Empty(t, a.Children())
}
