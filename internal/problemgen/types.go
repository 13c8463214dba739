package problemgen

import "fmt"

// Operator is one of the four arithmetic operations a problem can use.
// The value is the symbol shown to the player.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "×"
	OpDiv Operator = "÷"
)

// Operators lists every operator in draw order. The generator picks uniformly
// from this slice.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Name returns the lower-case operator name ("add", "sub", "mul", "div").
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Apply evaluates a op b. The second return value is false for an unknown
// operator, division by zero, or a division that leaves a remainder.
func (o Operator) Apply(a, b int) (int, bool) {
	switch o {
	case OpAdd:
		return a + b, true
	case OpSub:
		return a - b, true
	case OpMul:
		return a * b, true
	case OpDiv:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}

// Problem is a generated arithmetic problem with its correct answer.
type Problem struct {
	// Operand1 is the left operand. For division it is divisor × quotient.
	Operand1 int

	// Operand2 is the right operand. For division it is the divisor.
	Operand2 int

	Operator Operator

	// Answer is Operand1 Operator Operand2.
	Answer int

	// Fallback is true when the problem came from the simplified fallback draw
	// after the rejection loop ran out of attempts. Fallback problems are not
	// re-checked against the difficulty's result bound.
	Fallback bool
}

// Text renders the problem the way it is shown to the player, e.g. "12 × 3 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.Operand1, p.Operator, p.Operand2)
}

// String renders the problem with its answer, for logs.
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = %d", p.Operand1, p.Operator, p.Operand2, p.Answer)
}
