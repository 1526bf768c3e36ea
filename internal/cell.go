package internal

import (
	"strings"

	"golang.org/x/exp/maps"
)

// escapeSign lets a user store literal text that would otherwise parse as
// a formula or number: a leading escape sign is stripped from the displayed
// Value but kept in GetText.
const escapeSign = '\''

// formulaSign marks the start of a formula.
const formulaSign = '='

// cellKind tags Cell's content variant. Implemented as a tagged sum with a
// small dispatch in Cell's own methods rather than as a separate interface
// hierarchy per variant.
type cellKind int

const (
	kindEmpty cellKind = iota
	kindText
	kindFormula
)

// Cell is one addressable unit of a Sheet: polymorphic content (empty, text,
// or formula), a cache (formula content only), and its edges into the
// sheet's dependency graph.
//
// Cell holds a non-owning reference to its Sheet and to its neighbours (by
// Position, resolved through the sheet at traversal time) so that the
// dependency graph's cycles never become ownership cycles.
type Cell struct {
	sheet *Sheet
	pos   Position

	kind    cellKind
	text    string   // raw Set() input, for kindText and GetText's "" case
	formula *Formula // non-nil only for kindFormula
	cache   *Value   // valid cache for kindFormula; always nil otherwise

	out map[Position]struct{} // cells this cell depends on
	in  map[Position]struct{} // cells that depend on this cell
}

func newCell(sheet *Sheet, pos Position) *Cell {
	return &Cell{
		sheet: sheet,
		pos:   pos,
		kind:  kindEmpty,
		out:   make(map[Position]struct{}),
		in:    make(map[Position]struct{}),
	}
}

// Set assigns raw text to the cell, classified by prefix: empty text is
// Empty, a '=' prefix with more than one byte is a Formula, anything else
// is Text (a lone "=" is Text, not a Formula). Parse and cycle-check happen
// against a candidate before any state is touched; on either failure the
// cell is left byte-for-byte unchanged.
func (c *Cell) Set(raw string) error {
	var candidate Cell
	candidate.kind = kindEmpty
	switch {
	case raw == "":
		candidate.kind = kindEmpty
	case len(raw) > 1 && raw[0] == formulaSign:
		f, err := ParseFormula(raw[1:])
		if err != nil {
			return &FormulaParseError{Text: raw, Err: err}
		}
		candidate.kind = kindFormula
		candidate.formula = f
	default:
		candidate.kind = kindText
		candidate.text = raw
	}

	var refs []Position
	if candidate.kind == kindFormula {
		refs = candidate.formula.GetReferencedCells()
	}

	if c.wouldCycle(refs) {
		return &CircularDependencyError{Pos: c.pos}
	}

	// Commit: drop old forward edges, install new content, add new forward
	// edges (materializing missing referents), invalidate downstream caches.
	c.dropForwardEdges()

	c.kind = candidate.kind
	c.text = candidate.text
	c.formula = candidate.formula
	c.cache = nil

	for _, ref := range refs {
		neighbor := c.sheet.ensureCell(ref)
		c.out[ref] = struct{}{}
		neighbor.in[c.pos] = struct{}{}
	}

	c.invalidateDependents()
	return nil
}

// Clear replaces the cell's content with Empty. Like Set, this drops the
// cell's own out-edges (Empty content references nothing, so out must
// become empty to keep it in sync with the content) and invalidates every
// downstream formula cache, since those caches still depend on this cell's
// now-changed value. The sheet separately decides whether to drop the node
// itself based on IsReferenced (in-edges) after Clear returns.
func (c *Cell) Clear() {
	c.dropForwardEdges()
	c.kind = kindEmpty
	c.text = ""
	c.formula = nil
	c.cache = nil
	c.invalidateDependents()
}

// dropForwardEdges removes this cell's out-edges and the matching in-edges
// on its neighbours, without touching in-edges (who depends on this cell).
func (c *Cell) dropForwardEdges() {
	for ref := range c.out {
		if neighbor, ok := c.sheet.cells[ref]; ok {
			delete(neighbor.in, c.pos)
		}
	}
	maps.Clear(c.out)
}

// wouldCycle reports whether installing a formula referencing refs would
// introduce a cycle. Since the existing graph is acyclic, a reverse walk
// from this cell over in-edges enumerates exactly the cells that would
// transitively depend on this cell after commit; if any of them also
// appears in refs, a cycle would form.
func (c *Cell) wouldCycle(refs []Position) bool {
	if len(refs) == 0 {
		return false
	}
	wants := make(map[Position]struct{}, len(refs))
	for _, r := range refs {
		wants[r] = struct{}{}
	}

	visited := map[Position]struct{}{c.pos: {}}
	if _, ok := wants[c.pos]; ok {
		return true
	}
	queue := []Position{c.pos}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell, ok := c.sheet.cells[cur]
		if !ok {
			continue
		}
		for dep := range cell.in {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			if _, ok := wants[dep]; ok {
				return true
			}
			queue = append(queue, dep)
		}
	}
	return false
}

// invalidateDependents walks the transitive closure of in-edges, clearing
// each formula cache encountered. The walk prunes at any cell whose cache
// is already invalid: that cell's own dependents were already invalidated
// when its cache was cleared.
func (c *Cell) invalidateDependents() {
	queue := maps.Keys(c.in)
	visited := make(map[Position]struct{}, len(queue))
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if _, seen := visited[pos]; seen {
			continue
		}
		visited[pos] = struct{}{}
		dependent, ok := c.sheet.cells[pos]
		if !ok {
			continue
		}
		if dependent.kind == kindFormula && dependent.cache == nil {
			continue // already invalid; its own dependents are too
		}
		dependent.cache = nil
		queue = append(queue, maps.Keys(dependent.in)...)
	}
}

// GetValue returns the cell's current Value: for Formula content, the
// cache if present, else a fresh evaluation that is then cached.
func (c *Cell) GetValue() Value {
	switch c.kind {
	case kindEmpty:
		return StringValue("")
	case kindText:
		if len(c.text) > 0 && c.text[0] == escapeSign {
			return StringValue(c.text[1:])
		}
		return StringValue(c.text)
	case kindFormula:
		if c.cache != nil {
			return *c.cache
		}
		val := c.formula.Evaluate(c.sheet)
		c.cache = &val
		return val
	}
	return StringValue("") // unreachable: cellKind has exactly three values
}

// GetText returns the raw textual form of the cell's content: "" for
// Empty, the raw stored string (including any leading escape) for Text,
// and "=" + the canonical expression for Formula.
func (c *Cell) GetText() string {
	switch c.kind {
	case kindEmpty:
		return ""
	case kindText:
		return c.text
	case kindFormula:
		var sb strings.Builder
		sb.WriteByte(formulaSign)
		sb.WriteString(c.formula.GetExpression())
		return sb.String()
	}
	return "" // unreachable: cellKind has exactly three values
}

// GetReferencedCells returns the valid positions this cell's content
// directly references, deduplicated, in traversal order.
func (c *Cell) GetReferencedCells() []Position {
	if c.kind != kindFormula {
		return nil
	}
	return c.formula.GetReferencedCells()
}

// IsReferenced reports whether any other cell depends on this one.
func (c *Cell) IsReferenced() bool {
	return len(c.in) > 0
}
