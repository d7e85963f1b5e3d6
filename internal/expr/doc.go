package expr

// Package expr compiles the algebraic expressions typed into the vector
// component fields and evaluates them numerically at coordinate points. The
// grammar is fixed: float literals, the declared coordinate symbols, the
// constants pi and e, operators + - * / and right-associative ^ (also **),
// unary minus, parentheses, and a closed table of single-argument functions.
// Compilation failures are reported as typed SyntaxError values carrying the
// byte offset of the problem; evaluation never panics and follows IEEE float
// semantics for domain errors.
