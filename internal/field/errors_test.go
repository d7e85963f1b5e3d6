package field

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/quiverlab/field-plotter/internal/expr"
)

func TestParseError_WrapsSyntaxError(t *testing.T) {
	_, cause := expr.Compile("x +", []string{"x", "y", "z"})
	if cause == nil {
		t.Fatal("expected a syntax error from Compile")
	}
	err := &ParseError{Component: "Vy", Expr: "x +", Err: cause}

	var syntaxErr *expr.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Error("ParseError does not unwrap to *expr.SyntaxError")
	}
	if !strings.Contains(err.Error(), "Vy") || !strings.Contains(err.Error(), "x +") {
		t.Errorf("ParseError message %q missing component or expression", err.Error())
	}
}

func TestUserMessage(t *testing.T) {
	syntaxCause := &expr.SyntaxError{Pos: 2, Msg: "unexpected end of expression"}
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"parse error", &ParseError{Component: "Vx", Expr: "x +", Err: syntaxCause}, "Error in equation"},
		{"parse error names component", &ParseError{Component: "Vx", Expr: "x +", Err: syntaxCause}, "Vx"},
		{"eval error", &EvalError{Component: "Vz", Reason: "no finite values over the sampling grid"}, "Error in equation"},
		{"eval error names component", &EvalError{Component: "Vz", Reason: "no finite values over the sampling grid"}, "Vz"},
		{"shape error", &ShapeError{Op: "assemble 2D vectors", Want: 400, Got: 399}, "Error in equation"},
		{"wrapped parse error", fmt.Errorf("plot: %w", &ParseError{Component: "Vy", Expr: ")", Err: syntaxCause}), "Vy"},
		{"other error passthrough", errors.New("disk full"), "disk full"},
	}

	for _, test := range tests {
		msg := UserMessage(test.err)
		if !strings.Contains(msg, test.contains) {
			t.Errorf("%s: UserMessage() = %q, expected it to contain %q", test.name, msg, test.contains)
		}
	}
}

func TestShapeError_Message(t *testing.T) {
	err := &ShapeError{Op: "assemble 3D vectors", Want: 512, Got: 100}
	expected := "assemble 3D vectors: array length 100, expected 512"
	if err.Error() != expected {
		t.Errorf("ShapeError.Error() = %q, expected %q", err.Error(), expected)
	}
}
