package internal

import (
	"strconv"
	"strings"
)

// CellValueLookup is implemented by the sheet and consumed by Formula to
// resolve a referenced position to the Value currently stored there.
// Missing positions are represented by ok == false.
type CellValueLookup interface {
	LookupValue(pos Position) (Value, bool)
}

// Formula is a thin façade over a parsed Expr: it owns the translation from
// sheet cell lookups into the numbers or typed errors the AST evaluator
// consumes, keeping the AST itself ignorant of the sheet's Value
// representation.
type Formula struct {
	ast Expr
}

// ParseFormula parses a formula body (the leading '=' already stripped) and
// returns a Formula, or a wrapped ErrFormulaParse on any syntax error.
func ParseFormula(body string) (*Formula, error) {
	expr, err := parseFormulaBody(body)
	if err != nil {
		return nil, err
	}
	return &Formula{ast: expr}, nil
}

// Evaluate runs the formula against lookup, returning a finite number or a
// FormulaError, with the first error encountered in resolution or
// arithmetic short-circuiting the rest.
func (f *Formula) Evaluate(lookup CellValueLookup) Value {
	resolve := func(pos Position) (float64, *FormulaError) {
		if !pos.IsValid() {
			return 0, &FormulaError{Category: ErrRef}
		}
		val, ok := lookup.LookupValue(pos)
		if !ok {
			return 0, nil // missing cell contributes 0
		}
		if n, isNum := val.AsNumber(); isNum {
			return n, nil
		}
		if s, isStr := val.AsString(); isStr {
			if s == "" {
				return 0, nil
			}
			// strconv.ParseFloat rejects any surrounding whitespace but also
			// accepts "inf", "nan" and hex floats; the character check below
			// limits it to decimal notation, and an out-of-range literal
			// fails with ErrRange, so every accepted string is finite.
			if strings.Trim(s, "0123456789+-.eE") != "" {
				return 0, &FormulaError{Category: ErrValue}
			}
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, &FormulaError{Category: ErrValue}
			}
			return n, nil
		}
		if ferr, isErr := val.AsError(); isErr {
			return 0, &ferr
		}
		return 0, nil
	}
	n, ferr := f.ast.Eval(resolve)
	if ferr != nil {
		return ErrorValue(*ferr)
	}
	return NumberValue(n)
}

// GetReferencedCells returns the valid positions syntactically referenced
// by the formula, deduplicated, in AST traversal order.
func (f *Formula) GetReferencedCells() []Position {
	return GetReferencedCells(f.ast)
}

// GetExpression renders the formula back to its canonical text, with
// minimal parenthesization and no whitespace.
func (f *Formula) GetExpression() string {
	return GetExpression(f.ast)
}
