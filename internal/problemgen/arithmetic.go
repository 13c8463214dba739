package problemgen

import "math/rand/v2"

// draw produces one candidate problem for op using the operand ranges of d.
func (g *RandomGenerator) draw(op Operator, d Difficulty) Problem {
	var a, b int
	switch op {
	case OpAdd:
		a, b = drawAddends(g.rnd, d)
	case OpSub:
		a = drawMinuend(g.rnd, d)
		b = drawSubtrahend(g.rnd, a)
	case OpMul:
		a, b = drawFactors(g.rnd, d)
	case OpDiv:
		divisor, quotient := drawDivision(g.rnd, d)
		a, b = divisor*quotient, divisor
	}
	answer, _ := op.Apply(a, b)
	return Problem{Operand1: a, Operand2: b, Operator: op, Answer: answer}
}

func drawAddends(rnd *rand.Rand, d Difficulty) (int, int) {
	if d == DifficultySimple {
		a := intIn(rnd, 1, 80)
		return a, intIn(rnd, 1, max(1, 99-a))
	}
	return intIn(rnd, 10, 99), intIn(rnd, 10, 99)
}

func drawMinuend(rnd *rand.Rand, d Difficulty) int {
	if d == DifficultySimple {
		return intIn(rnd, 10, 99)
	}
	return intIn(rnd, 10, 150)
}

// drawSubtrahend returns b in [1, a-1], so a-b is always positive for a ≥ 2.
func drawSubtrahend(rnd *rand.Rand, a int) int {
	b := intIn(rnd, 1, a-1)
	if b >= a {
		b = a - 1
	}
	return max(1, b)
}

func drawFactors(rnd *rand.Rand, d Difficulty) (int, int) {
	if d == DifficultySimple {
		if rnd.Float64() < 0.6 {
			a := intIn(rnd, 2, 9)
			return a, intIn(rnd, 2, max(2, min(12, 99/a)))
		}
		return intIn(rnd, 2, 9), intIn(rnd, 2, 9)
	}
	a, b := intIn(rnd, 2, 15), intIn(rnd, 2, 15)
	// Keep two-digit by two-digit products rare.
	if a > 9 && b > 9 && rnd.Float64() > 0.3 {
		a = intIn(rnd, 2, 9)
	}
	return a, b
}

func drawDivision(rnd *rand.Rand, d Difficulty) (divisor, quotient int) {
	if d == DifficultySimple {
		divisor = intIn(rnd, 2, 9)
		quotient = intIn(rnd, 2, max(2, min(9, 99/divisor)))
		return divisor, quotient
	}
	return intIn(rnd, 2, 12), intIn(rnd, 2, 12)
}
