package problemgen

import "fmt"

// ValidationError describes why a problem breaks an invariant.
type ValidationError struct {
	Check   string // Short name of the failed check, e.g. "arithmetic"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

// Validate recomputes the answer of p and checks the difficulty bound.
// Fallback problems skip the bound check, matching the generator's contract.
func Validate(p Problem, d Difficulty) error {
	got, ok := p.Operator.Apply(p.Operand1, p.Operand2)
	if !ok {
		if p.Operator == OpDiv {
			return &ValidationError{
				Check:   "division",
				Message: fmt.Sprintf("%d is not a multiple of %d", p.Operand1, p.Operand2),
			}
		}
		return &ValidationError{
			Check:   "operator",
			Message: fmt.Sprintf("unknown operator %q", p.Operator),
		}
	}
	if got != p.Answer {
		return &ValidationError{
			Check:   "arithmetic",
			Message: fmt.Sprintf("computed %d but problem claims %d", got, p.Answer),
		}
	}

	profile := d.Profile()
	if profile.Bounded && !p.Fallback && (p.Answer < 0 || p.Answer > profile.MaxValue) {
		return &ValidationError{
			Check:   "bound",
			Message: fmt.Sprintf("answer %d outside [0, %d]", p.Answer, profile.MaxValue),
		}
	}
	return nil
}
