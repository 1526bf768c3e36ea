package internal

import "errors"

// Sentinel errors. Callers discriminate with errors.Is, following the same
// wrapping style as the rest of this package.
var (
	// ErrInvalidPosition is wrapped by InvalidPositionError.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrFormulaParse is wrapped by FormulaParseError.
	ErrFormulaParse = errors.New("formula parse error")
	// ErrCircularDependency is wrapped by CircularDependencyError.
	ErrCircularDependency = errors.New("circular dependency detected")
)

// InvalidPositionError is returned by every Sheet method that accepts a
// Position when that Position fails its validity predicate.
type InvalidPositionError struct {
	Pos Position
}

func (e *InvalidPositionError) Error() string {
	return ErrInvalidPosition.Error() + ": " + e.Pos.String()
}

func (e *InvalidPositionError) Unwrap() error { return ErrInvalidPosition }

// FormulaParseError is returned by SetCell when the input begins with '='
// and has more than one byte, but the remainder fails to parse.
type FormulaParseError struct {
	Text string
	Err  error
}

func (e *FormulaParseError) Error() string {
	return ErrFormulaParse.Error() + " in \"" + e.Text + "\": " + e.Err.Error()
}

func (e *FormulaParseError) Unwrap() error { return ErrFormulaParse }

// CircularDependencyError is returned by SetCell when the proposed content
// would introduce a cycle into the dependency graph.
type CircularDependencyError struct {
	Pos Position
}

func (e *CircularDependencyError) Error() string {
	return ErrCircularDependency.Error() + " at " + e.Pos.String()
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }
