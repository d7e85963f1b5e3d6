package expr

import (
	"errors"
	"math"
	"testing"
)

func TestCompile_Precedence(t *testing.T) {
	symbols := []string{"x", "y", "z"}
	tests := []struct {
		src      string
		point    []float64
		expected float64
	}{
		{"1+2*3", []float64{0, 0, 0}, 7},
		{"(1+2)*3", []float64{0, 0, 0}, 9},
		{"2*x+y", []float64{3, 4, 0}, 10},
		{"1-2-3", []float64{0, 0, 0}, -4},
		{"6/3/2", []float64{0, 0, 0}, 1},
		{"x*y^2", []float64{2, 3, 0}, 18},
		{"-x^2", []float64{3, 0, 0}, -9},
		{"2^-3", []float64{0, 0, 0}, 0.125},
		{"2**3**2", []float64{0, 0, 0}, 512},
		{"-x*y", []float64{2, 3, 0}, -6},
		{"+x", []float64{5, 0, 0}, 5},
		{"--x", []float64{5, 0, 0}, 5},
		{"  x  +  y ", []float64{1, 2, 0}, 3},
		{".5*x", []float64{4, 0, 0}, 2},
		{"1.5e2", []float64{0, 0, 0}, 150},
		{"2E-2", []float64{0, 0, 0}, 0.02},
	}

	for _, test := range tests {
		prog, err := Compile(test.src, symbols)
		if err != nil {
			t.Errorf("Compile(%q) error: %v", test.src, err)
			continue
		}
		result := prog.Eval(test.point)
		if math.Abs(result-test.expected) > 1e-12 {
			t.Errorf("Eval(%q) at %v = %v, expected %v", test.src, test.point, result, test.expected)
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	symbols := []string{"x", "y", "z"}
	tests := []struct {
		src string
		pos int
		msg string
	}{
		{"x +", 3, "unexpected end of expression"},
		{"", 0, "unexpected end of expression"},
		{"x + * y", 4, `unexpected "*"`},
		{"(x", 2, "missing closing parenthesis"},
		{"sin(x", 5, "missing closing parenthesis"},
		{"foo(x)", 0, `unknown function "foo"`},
		{"x + q", 4, `unknown symbol "q"`},
		{"x $ y", 2, `unexpected character '$'`},
		{"x y", 2, `unexpected "y" after expression`},
	}

	for _, test := range tests {
		_, err := Compile(test.src, symbols)
		if err == nil {
			t.Errorf("Compile(%q) succeeded, expected error", test.src)
			continue
		}
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("Compile(%q) error is %T, expected *SyntaxError", test.src, err)
			continue
		}
		if syntaxErr.Pos != test.pos {
			t.Errorf("Compile(%q) error at offset %d, expected %d", test.src, syntaxErr.Pos, test.pos)
		}
		if syntaxErr.Msg != test.msg {
			t.Errorf("Compile(%q) error message %q, expected %q", test.src, syntaxErr.Msg, test.msg)
		}
	}
}

func TestCompile_SymbolsPerSystem(t *testing.T) {
	tests := []struct {
		src     string
		symbols []string
		wantErr bool
	}{
		{"-r*sin(theta)", []string{"r", "theta", "z"}, false},
		{"r*sin(theta)*cos(phi)", []string{"r", "theta", "phi"}, false},
		{"theta", []string{"x", "y", "z"}, true},
		{"x", []string{"r", "theta", "phi"}, true},
	}

	for _, test := range tests {
		_, err := Compile(test.src, test.symbols)
		if (err != nil) != test.wantErr {
			t.Errorf("Compile(%q, %v) error = %v, wantErr %v", test.src, test.symbols, err, test.wantErr)
		}
	}
}
