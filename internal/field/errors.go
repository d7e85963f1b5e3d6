package field

import (
	"errors"
	"fmt"
)

// ParseError reports a component expression rejected by the compiler. It
// wraps the underlying expr.SyntaxError.
type ParseError struct {
	Component string // display name of the component, e.g. "Vy"
	Expr      string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s = %q: %v", e.Component, e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EvalError reports a component that produced no usable values over the grid
type EvalError struct {
	Component string
	Reason    string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate %s: %s", e.Component, e.Reason)
}

// ShapeError reports mismatched array lengths between a sampled component
// and its grid.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: array length %d, expected %d", e.Op, e.Got, e.Want)
}

// UserMessage maps a pipeline error to the notification text shown to the
// user. All equation problems collapse into one "Error in equation" message
// with the failing component named; other errors pass through unchanged.
func UserMessage(err error) string {
	var parseErr *ParseError
	var evalErr *EvalError
	var shapeErr *ShapeError
	switch {
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Error in equation: %s is not a valid expression (%v)", parseErr.Component, parseErr.Err)
	case errors.As(err, &evalErr):
		return fmt.Sprintf("Error in equation: %s could not be evaluated (%s)", evalErr.Component, evalErr.Reason)
	case errors.As(err, &shapeErr):
		return "Error in equation: internal array shape mismatch"
	}
	return err.Error()
}
