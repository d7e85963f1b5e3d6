package expr

import "math"

// node is a compiled expression fragment evaluated at a coordinate point
type node interface {
	eval(point []float64) float64
}

type literal struct {
	value float64
}

func (n literal) eval([]float64) float64 {
	return n.value
}

// variable reads one coordinate by its position in the symbol tuple
type variable struct {
	index int
}

func (n variable) eval(point []float64) float64 {
	return point[n.index]
}

type negate struct {
	operand node
}

func (n negate) eval(point []float64) float64 {
	return -n.operand.eval(point)
}

type binary struct {
	op    tokenKind
	left  node
	right node
}

func (n binary) eval(point []float64) float64 {
	l := n.left.eval(point)
	r := n.right.eval(point)
	switch n.op {
	case tokenPlus:
		return l + r
	case tokenMinus:
		return l - r
	case tokenStar:
		return l * r
	case tokenSlash:
		return l / r
	case tokenCaret:
		return math.Pow(l, r)
	}
	return math.NaN()
}

type call struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (n call) eval(point []float64) float64 {
	return n.fn(n.arg.eval(point))
}
