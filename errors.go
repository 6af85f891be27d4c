package regexcore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Compile/CompileWithConfig.
var (
	// ErrPatternTooLong indicates a pattern exceeded Config.MaxPatternLength.
	ErrPatternTooLong = errors.New("regexcore: pattern too long")

	// ErrTooManyStates indicates determinization produced a DFA larger than
	// Config.DeterminizationLimit.
	ErrTooManyStates = errors.New("regexcore: determinized DFA exceeds state limit")
)

// LimitError reports which compile-time limit was exceeded and by how much.
type LimitError struct {
	Err   error
	Limit int
	Got   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: limit %d, got %d", e.Err, e.Limit, e.Got)
}

func (e *LimitError) Unwrap() error {
	return e.Err
}
