package booleval

import (
	"fmt"
	"unicode/utf8"
)

type TokenType uint64

const (
	EOF rune = -1

	TokenEOF TokenType = iota
	TokenIdentifier
	TokenNumber
	TokenOpenParentheses
	TokenCloseParentheses
	TokenComma
	TokenWhitespace
	TokenUnexpected
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "Eof",
	TokenIdentifier:       "Ident",
	TokenNumber:           "Number",
	TokenOpenParentheses:  "LParen",
	TokenCloseParentheses: "RParen",
	TokenComma:            "Comma",
	TokenWhitespace:       "Whitespace",
	TokenUnexpected:       "ErrorUnexpected",
}

var operatorTable = map[rune]TokenType{
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
	',': TokenComma,
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", uint64(t))
}

type Token struct {
	Typ  TokenType
	Span Span
	// Char holds the offending character of a TokenUnexpected.
	Char rune
}

// Kind renders the token type, including the offending character for
// unexpected input, e.g. ErrorUnexpected('@').
func (t Token) Kind() string {
	if t.Typ == TokenUnexpected {
		return fmt.Sprintf("%s(%q)", t.Typ, t.Char)
	}

	return t.Typ.String()
}

func (t Token) Lexeme(src string) string {
	return src[t.Span.Start:t.Span.End]
}

// Tokenizer is a single-use stream of tokens. Next reports false once the
// stream is exhausted.
type Tokenizer interface {
	Next() (Token, bool)
}

// Lexer is a cursor over the source text. Whitespace is skipped, unexpected
// characters become TokenUnexpected and scanning carries on past them. Once the
// input is consumed a single zero-width TokenEOF is emitted at len(src).
type Lexer struct {
	src  string
	pos  int
	done bool
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Lex is a convenience wrapper returning every token of src.
func Lex(src string) []Token {
	return NewLexer(src).Run()
}

func (l *Lexer) Next() (Token, bool) {
	for {
		tok, ok := l.scan()
		if !ok {
			return Token{}, false
		}

		if tok.Typ == TokenWhitespace {
			continue
		}

		return tok, true
	}
}

func (l *Lexer) Run() []Token {
	var tokens []Token
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		tokens = append(tokens, tok)
	}

	return tokens
}

// scan reads one raw token, whitespace included.
func (l *Lexer) scan() (Token, bool) {
	if l.done {
		return Token{}, false
	}

	return defaultState(l), true
}

func defaultState(l *Lexer) Token {
	switch r := l.peek(); {
	case r == EOF:
		l.done = true
		return Token{Typ: TokenEOF, Span: NewSpan(len(l.src), len(l.src))}
	case isSpace(r):
		return whitespaceState(l)
	case isDigit(r):
		return numberState(l)
	case isLetter(r):
		return identifierState(l)
	default:
		return operatorState(l)
	}
}

func whitespaceState(l *Lexer) Token {
	return l.run(TokenWhitespace, isSpace)
}

func numberState(l *Lexer) Token {
	return l.run(TokenNumber, isDigit)
}

func identifierState(l *Lexer) Token {
	return l.run(TokenIdentifier, isLetter)
}

func operatorState(l *Lexer) Token {
	start := l.pos
	r := l.next()

	if tok, ok := operatorTable[r]; ok {
		return Token{Typ: tok, Span: NewSpan(start, l.pos)}
	}

	return Token{Typ: TokenUnexpected, Span: NewSpan(start, l.pos), Char: r}
}

// run consumes the longest run of runes accepted by class.
func (l *Lexer) run(t TokenType, class func(rune) bool) Token {
	start := l.pos
	for r := l.peek(); r != EOF && class(r); r = l.peek() {
		l.next()
	}

	return Token{Typ: t, Span: NewSpan(start, l.pos)}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return EOF
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.src) {
		return EOF
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size

	return r
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}

	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
