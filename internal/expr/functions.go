package expr

import "math"

// functions is the closed set of names callable from expressions. All take a
// single argument; log is the natural logarithm, same as ln.
var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"sign":  sign,
}

// constants resolve bare identifiers that are not coordinate symbols.
// Coordinate symbols take precedence should a system ever shadow a name.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return v // preserves zero sign and NaN
}
