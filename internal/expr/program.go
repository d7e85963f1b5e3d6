package expr

import "fmt"

// Program is a compiled expression ready for repeated numeric evaluation
type Program struct {
	root    node
	source  string
	symbols []string
}

// Compile parses src as an algebraic expression over the ordered symbol tuple.
// The expression may reference any subset of the symbols. Any failure is
// reported as a *SyntaxError; no partial program is returned.
func Compile(src string, symbols []string) (*Program, error) {
	p := &parser{lx: &lexer{src: src}, symbols: symbols}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenEOF {
		return nil, &SyntaxError{Pos: p.cur.pos, Msg: fmt.Sprintf("unexpected %q after expression", p.cur.text)}
	}
	return &Program{root: root, source: src, symbols: symbols}, nil
}

// Eval evaluates the program at a coordinate point bound positionally to the
// compile-time symbol tuple; point must carry one value per symbol. Division
// by zero and domain errors yield infinities or NaN rather than panicking.
func (p *Program) Eval(point []float64) float64 {
	return p.root.eval(point)
}

// Source returns the expression text the program was compiled from
func (p *Program) Source() string {
	return p.source
}

// Symbols returns the symbol tuple the program was compiled against
func (p *Program) Symbols() []string {
	return p.symbols
}
