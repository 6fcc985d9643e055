package sat

import "fmt"

// Variable is an opaque 0-based variable identifier.
type Variable int

// Literal represents a literal, which either represents a boolean variable
// or its negation. Two literals sharing a variable map to two adjacent
// indices, with the positive literal always the even one.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Variable) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v Variable) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() Variable {
	return Variable(l / 2)
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
