package deal

import "fmt"

// Mode selects how strictly the pipeline ordering is enforced.
//
// The source process allowed arbitrary jumps between non-terminal statuses
// (e.g. new_deal straight to under_contract). Whether that is intentional
// flexibility or an unguarded gap is an open operational question, so both
// behaviors are available instead of silently tightening the machine.
type Mode string

const (
	// ModePermissive allows any known non-terminal → known transition.
	ModePermissive Mode = "permissive"
	// ModeStrict allows only the next pipeline status, or passed.
	ModeStrict Mode = "strict"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePermissive, ModeStrict:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown pipeline mode %q", s)
}

// Rules validates status transitions under the configured mode.
type Rules struct {
	Mode Mode
}

// Check returns nil when the from → to transition is allowed. Every failure
// wraps ErrInvalidTransition so callers can match with errors.Is.
func (r Rules) Check(from, to Status) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return fmt.Errorf("%w: target %q is not a pipeline status", ErrInvalidTransition, to)
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}
	if r.Mode != ModeStrict {
		return nil
	}
	if to == StatusPassed {
		return nil
	}
	if pipelineIndex(to) != pipelineIndex(from)+1 {
		return fmt.Errorf("%w: strict mode requires %s after %s", ErrInvalidTransition, pipelineOrder[pipelineIndex(from)+1], from)
	}
	return nil
}
