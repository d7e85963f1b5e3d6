package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
)

// token is a single lexeme with its byte offset in the source
type token struct {
	kind  tokenKind
	text  string
	pos   int
	value float64 // set for tokenNumber
}

// lexer walks the source string one token at a time
type lexer struct {
	src string
	pos int
}

// next returns the following token, skipping whitespace. At the end of the
// source it returns tokenEOF positioned one past the last byte.
func (lx *lexer) next() (token, error) {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		lx.pos += size
	}
	if lx.pos >= len(lx.src) {
		return token{kind: tokenEOF, pos: lx.pos}, nil
	}

	start := lx.pos
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	switch {
	case isDigit(lx.src[lx.pos]) || (r == '.' && lx.digitAt(lx.pos+1)):
		return lx.scanNumber()
	case unicode.IsLetter(r) || r == '_':
		return lx.scanIdent(), nil
	}

	lx.pos += size
	switch r {
	case '+':
		return token{kind: tokenPlus, text: "+", pos: start}, nil
	case '-':
		return token{kind: tokenMinus, text: "-", pos: start}, nil
	case '*':
		if lx.pos < len(lx.src) && lx.src[lx.pos] == '*' {
			lx.pos++
			return token{kind: tokenCaret, text: "**", pos: start}, nil
		}
		return token{kind: tokenStar, text: "*", pos: start}, nil
	case '/':
		return token{kind: tokenSlash, text: "/", pos: start}, nil
	case '^':
		return token{kind: tokenCaret, text: "^", pos: start}, nil
	case '(':
		return token{kind: tokenLParen, text: "(", pos: start}, nil
	case ')':
		return token{kind: tokenRParen, text: ")", pos: start}, nil
	}
	return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", r)}
}

// scanNumber scans a float literal: digits, optional fraction, optional
// exponent. A trailing 'e' not followed by digits is left for the next token
// so that "2e" lexes as the number 2 and the identifier e.
func (lx *lexer) scanNumber() (token, error) {
	start := lx.pos
	lx.acceptDigits()
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		lx.acceptDigits()
	}
	if lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		mark := lx.pos
		lx.pos++
		if lx.pos < len(lx.src) && (lx.src[lx.pos] == '+' || lx.src[lx.pos] == '-') {
			lx.pos++
		}
		if lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.acceptDigits()
		} else {
			lx.pos = mark
		}
	}

	text := lx.src[start:lx.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", text)}
	}
	return token{kind: tokenNumber, text: text, pos: start, value: value}, nil
}

func (lx *lexer) scanIdent() token {
	start := lx.pos
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		lx.pos += size
	}
	return token{kind: tokenIdent, text: lx.src[start:lx.pos], pos: start}
}

func (lx *lexer) acceptDigits() {
	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
}

func (lx *lexer) digitAt(pos int) bool {
	return pos < len(lx.src) && isDigit(lx.src[pos])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
