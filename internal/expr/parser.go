package expr

import "fmt"

// SyntaxError describes input rejected by the expression grammar
type SyntaxError struct {
	Pos int // byte offset into the source
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
}

// parser is a recursive descent parser with one token of lookahead.
// Precedence, loosest to tightest: additive, multiplicative, unary minus,
// power (right-associative, so -x^2 is -(x^2) and 2^-3 parses).
type parser struct {
	lx      *lexer
	cur     token
	symbols []string
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokenPlus || p.cur.kind == tokenMinus {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokenStar || p.cur.kind == tokenSlash {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	switch p.cur.kind {
	case tokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negate{operand: operand}, nil
	case tokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binary{op: tokenCaret, left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (node, error) {
	switch p.cur.kind {
	case tokenNumber:
		n := literal{value: p.cur.value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokenIdent:
		name, pos := p.cur.text, p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind == tokenLParen {
			return p.parseCall(name, pos)
		}
		return p.resolve(name, pos)

	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokenRParen {
			return nil, &SyntaxError{Pos: p.cur.pos, Msg: "missing closing parenthesis"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case tokenEOF:
		return nil, &SyntaxError{Pos: p.cur.pos, Msg: "unexpected end of expression"}
	}
	return nil, &SyntaxError{Pos: p.cur.pos, Msg: fmt.Sprintf("unexpected %q", p.cur.text)}
}

func (p *parser) parseCall(name string, pos int) (node, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unknown function %q", name)}
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenRParen {
		return nil, &SyntaxError{Pos: p.cur.pos, Msg: "missing closing parenthesis"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return call{name: name, fn: fn, arg: arg}, nil
}

// resolve binds an identifier to a coordinate symbol or a named constant
func (p *parser) resolve(name string, pos int) (node, error) {
	for i, s := range p.symbols {
		if s == name {
			return variable{index: i}, nil
		}
	}
	if v, ok := constants[name]; ok {
		return literal{value: v}, nil
	}
	return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unknown symbol %q", name)}
}
