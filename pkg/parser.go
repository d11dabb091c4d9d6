package booleval

import (
	"strconv"
	"strings"
)

// Parser builds a Program from a token stream with one token of lookahead.
// The grammar is
//
//	Program := Number Number* Expr Eof
//	Expr    := Ident [ '(' [ Expr { ',' Expr } ] ')' ]
//
// where the leading number says how many bits follow.
type Parser struct {
	src       string
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(src string, tokenizer Tokenizer) *Parser {
	return &Parser{
		src:       src,
		tokenizer: tokenizer,
	}
}

// Parse lexes and parses src.
func Parse(src string) (*Program, error) {
	return NewParser(src, NewLexer(src)).Run()
}

func (p *Parser) Run() (*Program, error) {
	args, err := p.control()
	if err != nil {
		return nil, err
	}

	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Typ != TokenEOF {
		return nil, p.errorf(ErrTrailing, tok.Span, "expected token of kind `%s`, instead got `%s`", TokenEOF, tok.Kind())
	}

	return &Program{
		Args: args,
		Expr: expr,
	}, nil
}

func (p *Parser) control() ([]bool, error) {
	count, countSpan, err := p.number()
	if err != nil {
		return nil, err
	}

	if count > MaxArgCount {
		return nil, p.errorf(ErrArgLimit, countSpan, "can't declare more than %d params", MaxArgCount)
	}

	args := make([]bool, 0, count)
	for i := uint64(0); i < count; i++ {
		if !p.check(TokenNumber) {
			tok := p.peek()
			return nil, p.errorf(ErrBit, tok.Span, "expected next bit, instead got token of kind `%s`", tok.Kind())
		}

		bit, span, err := p.number()
		if err != nil {
			return nil, err
		}

		switch bit {
		case 0, 1:
			args = append(args, bit == 1)
		default:
			return nil, p.errorf(ErrBit, span, "invalid bit, must be `0` or `1`")
		}
	}

	return args, nil
}

func (p *Parser) expr() (*Expr, error) {
	id, err := p.identifier()
	if err != nil {
		return nil, err
	}

	if p.check(TokenOpenParentheses) {
		return p.funcCall(id)
	}

	return &Expr{
		Kind: &Var{Ident: id},
		Span: id.Span,
	}, nil
}

func (p *Parser) funcCall(id Identifier) (*Expr, error) {
	if _, err := p.consume(TokenOpenParentheses); err != nil {
		return nil, err
	}

	var args []*Expr
	if !p.check(TokenCloseParentheses) {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			typ, err := p.expectOf(TokenComma, TokenCloseParentheses)
			if err != nil {
				return nil, err
			}

			if typ == TokenCloseParentheses {
				break
			}

			p.next() // Skip the comma, another argument must follow
		}
	}

	closer, err := p.consume(TokenCloseParentheses)
	if err != nil {
		return nil, err
	}

	return &Expr{
		Kind: &App{Ident: id, Args: args},
		Span: id.Span.To(closer.Span),
	}, nil
}

func (p *Parser) number() (uint64, Span, error) {
	tok, err := p.consume(TokenNumber)
	if err != nil {
		return 0, Span{}, err
	}

	n, perr := strconv.ParseUint(tok.Lexeme(p.src), 10, 64)
	if perr != nil {
		return 0, tok.Span, p.errorf(ErrNumber, tok.Span, "unparsable number")
	}

	return n, tok.Span, nil
}

func (p *Parser) identifier() (Identifier, error) {
	tok, err := p.consume(TokenIdentifier)
	if err != nil {
		return Identifier{}, err
	}

	return Identifier{
		Name: tok.Lexeme(p.src),
		Span: tok.Span,
	}, nil
}

func (p *Parser) peek() Token {
	if p.buf == nil {
		tok, ok := p.tokenizer.Next()
		if !ok {
			// An exhausted stream behaves as if it ended in EOF
			tok = Token{Typ: TokenEOF, Span: NewSpan(len(p.src), len(p.src))}
		}

		p.buf = &tok
	}

	return *p.buf
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Typ != TokenEOF {
		// EOF stays buffered since no more tokens are expected after it
		p.buf = nil
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) expect(typ TokenType) error {
	if tok := p.peek(); tok.Typ != typ {
		return p.errorf(ErrToken, tok.Span, "expected token of kind `%s`, instead got `%s`", typ, tok.Kind())
	}

	return nil
}

func (p *Parser) expectOf(types ...TokenType) (TokenType, error) {
	tok := p.peek()
	for _, typ := range types {
		if tok.Typ == typ {
			return typ, nil
		}
	}

	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = typ.String()
	}

	return 0, p.errorf(ErrToken, tok.Span, "expected token of kind in `[%s]`, instead got `%s`", strings.Join(names, ", "), tok.Kind())
}

func (p *Parser) consume(typ TokenType) (Token, error) {
	if err := p.expect(typ); err != nil {
		return Token{}, err
	}

	return p.next(), nil
}

func (p *Parser) errorf(kind ErrorKind, span Span, format string, args ...interface{}) *Error {
	return Errorf(kind, span, format, args...)
}
