// Package gosheet is an in-memory spreadsheet engine: a sparse grid of
// cells holding empty content, literal text, or a formula whose result is
// derived from other cells. It evaluates formulas, maintains the cell
// dependency graph, propagates invalidation on upstream edits, rejects
// circular dependencies, and renders the sheet as tab-delimited text in
// either value or raw-text form.
//
// This file is the published façade; internal/ holds the dependency-graph
// engine itself (Position/Size, the formula AST and evaluator, Cell, and
// Sheet).
package gosheet

import (
	"io"

	"github.com/andreylopin/gosheet/internal"
)

// Bounds on the addressable grid: a Position is valid iff both coordinates
// lie in [0, MaxRows) x [0, MaxCols).
const (
	MaxRows = internal.MaxRows
	MaxCols = internal.MaxCols
)

// Position is a zero-indexed (row, col) cell address.
type Position = internal.Position

// InvalidPosition is returned by ParsePosition on malformed input.
var InvalidPosition = internal.InvalidPosition

// ParsePosition parses an "A1"-style label, returning InvalidPosition on
// malformed input.
func ParsePosition(label string) Position {
	return internal.ParsePosition(label)
}

// Size is a grid extent; GetPrintableSize returns the minimal one
// containing every live cell whose text is non-empty.
type Size = internal.Size

// Value is a tagged union of {string, number, FormulaError}.
type Value = internal.Value

// FormulaError is a legitimate Value result (not an exception) produced by
// formula evaluation: Ref, Value, or Arithmetic.
type FormulaError = internal.FormulaError

// ErrorCategory enumerates the kinds of FormulaError.
type ErrorCategory = internal.ErrorCategory

// Error category constants for FormulaError.
const (
	ErrRef        = internal.ErrRef
	ErrValue      = internal.ErrValue
	ErrArithmetic = internal.ErrArithmetic
)

// Cell is one addressable unit of a Sheet.
type Cell = internal.Cell

// Sentinel errors, for use with errors.Is against whatever SetCell/GetCell/
// ClearCell return.
var (
	ErrInvalidPosition    = internal.ErrInvalidPosition
	ErrFormulaParse       = internal.ErrFormulaParse
	ErrCircularDependency = internal.ErrCircularDependency
)

// Concrete error types returned by Sheet's mutating methods; match against
// these with errors.As, or against the sentinels above with errors.Is.
type (
	InvalidPositionError    = internal.InvalidPositionError
	FormulaParseError       = internal.FormulaParseError
	CircularDependencyError = internal.CircularDependencyError
)

// Sheet owns all live cells and is the published entry point of this
// module: SetCell/GetCell/ClearCell mutate and inspect the grid,
// GetPrintableSize/PrintValues/PrintTexts render it.
type Sheet struct {
	inner *internal.Sheet
}

// NewSheet returns an empty Sheet.
func NewSheet() *Sheet {
	return &Sheet{inner: internal.NewSheet()}
}

// SetCell sets the text at pos, which the sheet classifies as Empty, Text,
// or Formula. It may return an *InvalidPositionError, a *FormulaParseError,
// or a *CircularDependencyError.
func (s *Sheet) SetCell(pos Position, text string) error {
	return s.inner.SetCell(pos, text)
}

// GetCell returns the cell at pos, or nil if none is live there.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	return s.inner.GetCell(pos)
}

// ClearCell resets the cell at pos to Empty, dropping it from storage if
// nothing else references it.
func (s *Sheet) ClearCell(pos Position) error {
	return s.inner.ClearCell(pos)
}

// GetPrintableSize returns the minimal bounding box containing every live,
// non-empty-text cell.
func (s *Sheet) GetPrintableSize() Size {
	return s.inner.GetPrintableSize()
}

// PrintValues renders the sheet's evaluated values as tab/newline-delimited
// text.
func (s *Sheet) PrintValues(out io.Writer) error {
	return s.inner.PrintValues(out)
}

// PrintTexts renders the sheet's raw cell text as tab/newline-delimited
// text.
func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.inner.PrintTexts(out)
}
