package solution

import "github.com/abhisek/mathcoach/internal/locale"

// Error reports a model answer that could not be turned into a Solution.
// Its message is the user-facing apology for Language; Err holds the cause.
type Error struct {
	Language locale.Language
	Err      error
}

func (e *Error) Error() string {
	return e.Language.Strings().SolveFailure
}

func (e *Error) Unwrap() error { return e.Err }
