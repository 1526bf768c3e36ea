package internal

import (
	"io"

	"golang.org/x/exp/maps"
)

// Sheet owns all live cells, keyed by Position. It routes mutation, lookup,
// clearing, and rendering, and exposes the CellValueLookup interface
// consumed by Formula's evaluator.
type Sheet struct {
	cells map[Position]*Cell
}

// NewSheet returns an empty Sheet.
func NewSheet() *Sheet {
	return &Sheet{cells: make(map[Position]*Cell)}
}

// SetCell validates pos, materializing a cell there if one does not yet
// exist, then delegates to Cell.Set. A freshly materialized cell whose Set
// then fails is left in place as an Empty cell: harmless, and simpler than
// unwinding.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.IsValid() {
		return &InvalidPositionError{Pos: pos}
	}
	cell := s.ensureCell(pos)
	return cell.Set(text)
}

// GetCell returns the cell at pos, or nil if none is live there.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, &InvalidPositionError{Pos: pos}
	}
	return s.cells[pos], nil
}

// GetConcreteCell is the internal counterpart to GetCell used by the
// dependency machinery; for this package's single concrete Cell type it is
// equivalent to GetCell, kept as a distinct name for that use site.
func (s *Sheet) GetConcreteCell(pos Position) (*Cell, error) {
	return s.GetCell(pos)
}

// ClearCell resets the cell at pos to Empty and, if nothing references it
// any more, drops it from storage.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.IsValid() {
		return &InvalidPositionError{Pos: pos}
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	cell.Clear()
	if !cell.IsReferenced() {
		delete(s.cells, pos)
	}
	return nil
}

// ensureCell returns the cell at pos, materializing an Empty one if it does
// not already exist. Callers are expected to have already validated pos.
func (s *Sheet) ensureCell(pos Position) *Cell {
	if cell, ok := s.cells[pos]; ok {
		return cell
	}
	cell := newCell(s, pos)
	s.cells[pos] = cell
	return cell
}

// LookupValue implements CellValueLookup for Formula's evaluator.
func (s *Sheet) LookupValue(pos Position) (Value, bool) {
	cell, ok := s.cells[pos]
	if !ok {
		return Value{}, false
	}
	return cell.GetValue(), true
}

// GetPrintableSize returns the minimal (rows, cols) bounding box containing
// every live cell whose text is non-empty.
func (s *Sheet) GetPrintableSize() Size {
	var size Size
	for pos, cell := range s.cells {
		if cell.GetText() == "" {
			continue
		}
		if pos.Row+1 > size.Rows {
			size.Rows = pos.Row + 1
		}
		if pos.Col+1 > size.Cols {
			size.Cols = pos.Col + 1
		}
	}
	return size
}

// PrintValues writes the sheet's printable bounding box to out, one row per
// line, cells separated by a single tab, each row terminated by '\n'.
// Missing cells and cells with empty text render as nothing; FormulaError
// renders as its short tag.
func (s *Sheet) PrintValues(out io.Writer) error {
	return s.print(out, func(c *Cell) string { return c.GetValue().String() })
}

// PrintTexts writes the sheet's printable bounding box to out using each
// cell's raw text form instead of its evaluated value.
func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.print(out, func(c *Cell) string { return c.GetText() })
}

func (s *Sheet) print(out io.Writer, render func(*Cell) string) error {
	size := s.GetPrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := io.WriteString(out, "\t"); err != nil {
					return err
				}
			}
			cell, ok := s.cells[Position{Row: row, Col: col}]
			if !ok || cell.GetText() == "" {
				continue
			}
			if _, err := io.WriteString(out, render(cell)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// positions returns every live Position in no particular order; used by
// tests asserting on which cells got materialized as a side effect of a
// formula referencing them.
func (s *Sheet) positions() []Position {
	return maps.Keys(s.cells)
}
