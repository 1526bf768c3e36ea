package internal

import (
	"math"
	"strconv"
	"strings"
)

// Resolver maps a referenced Position to the number it contributes to an
// arithmetic expression, or to the FormulaError that should short-circuit
// evaluation at that point. It is supplied by Formula, which translates
// sheet cell lookups into this shape.
type Resolver func(Position) (float64, *FormulaError)

// precedence levels, used by the canonical printer. The parser encodes the
// same levels in its call structure (parseAdditive, parseMultiplicative,
// parseUnary, parsePrimary).
const (
	precAdditive = iota + 1
	precMultiplicative
	precUnary
	precAtom
)

// Expr is a node of a parsed formula expression tree: a tagged sum of
// numeric literals, cell references, unary signs, and binary operators,
// each with its own Eval/collectRefs/writeExpr behavior.
type Expr interface {
	// Eval evaluates the subtree, short-circuiting on the first error
	// encountered in resolution or arithmetic.
	Eval(resolve Resolver) (float64, *FormulaError)
	// collectRefs appends the positions referenced by the subtree, in
	// traversal order, deduplicating via seen.
	collectRefs(seen map[Position]struct{}, out *[]Position)
	// precedence reports the node's own operator precedence, used by
	// writeExpr to decide minimal parenthesization.
	precedence() int
	// writeExpr renders the canonical text of the subtree.
	writeExpr(sb *strings.Builder)
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (e NumberExpr) Eval(Resolver) (float64, *FormulaError) { return e.Value, nil }
func (e NumberExpr) collectRefs(map[Position]struct{}, *[]Position) {}
func (e NumberExpr) precedence() int { return precAtom }
func (e NumberExpr) writeExpr(sb *strings.Builder) {
	sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
}

// CellRefExpr is a reference to another cell, written "A1" form.
type CellRefExpr struct {
	Ref Position
}

func (e CellRefExpr) Eval(resolve Resolver) (float64, *FormulaError) {
	return resolve(e.Ref)
}

func (e CellRefExpr) collectRefs(seen map[Position]struct{}, out *[]Position) {
	if !e.Ref.IsValid() {
		return
	}
	if _, ok := seen[e.Ref]; ok {
		return
	}
	seen[e.Ref] = struct{}{}
	*out = append(*out, e.Ref)
}

func (e CellRefExpr) precedence() int { return precAtom }
func (e CellRefExpr) writeExpr(sb *strings.Builder) {
	sb.WriteString(e.Ref.String())
}

// UnaryOp is a prefix sign operator.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
)

// UnaryExpr is a unary sign applied to an operand.
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
}

func (e UnaryExpr) Eval(resolve Resolver) (float64, *FormulaError) {
	x, ferr := e.X.Eval(resolve)
	if ferr != nil {
		return 0, ferr
	}
	if e.Op == UnaryMinus {
		x = -x
	}
	return x, nil
}

func (e UnaryExpr) collectRefs(seen map[Position]struct{}, out *[]Position) {
	e.X.collectRefs(seen, out)
}

func (e UnaryExpr) precedence() int { return precUnary }

func (e UnaryExpr) writeExpr(sb *strings.Builder) {
	if e.Op == UnaryMinus {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	writeOperand(sb, e.X, precUnary, false)
}

// BinOp is a binary arithmetic operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) symbol() byte {
	switch op {
	case OpAdd:
		return '+'
	case OpSub:
		return '-'
	case OpMul:
		return '*'
	default:
		return '/'
	}
}

func (op BinOp) precedence() int {
	if op == OpAdd || op == OpSub {
		return precAdditive
	}
	return precMultiplicative
}

// BinaryExpr is a binary arithmetic operation.
type BinaryExpr struct {
	Op   BinOp
	X, Y Expr
}

func (e BinaryExpr) Eval(resolve Resolver) (float64, *FormulaError) {
	x, ferr := e.X.Eval(resolve)
	if ferr != nil {
		return 0, ferr
	}
	y, ferr := e.Y.Eval(resolve)
	if ferr != nil {
		return 0, ferr
	}
	var result float64
	switch e.Op {
	case OpAdd:
		result = x + y
	case OpSub:
		result = x - y
	case OpMul:
		result = x * y
	case OpDiv:
		result = x / y
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &FormulaError{Category: ErrArithmetic}
	}
	return result, nil
}

func (e BinaryExpr) collectRefs(seen map[Position]struct{}, out *[]Position) {
	e.X.collectRefs(seen, out)
	e.Y.collectRefs(seen, out)
}

func (e BinaryExpr) precedence() int { return e.Op.precedence() }

func (e BinaryExpr) writeExpr(sb *strings.Builder) {
	thisPrec := e.precedence()
	writeOperand(sb, e.X, thisPrec, false)
	sb.WriteByte(e.Op.symbol())
	// Subtraction and division are not associative on the right: the same
	// precedence still needs parenthesizing there to preserve meaning.
	rightNeedsParenAtSamePrec := e.Op == OpSub || e.Op == OpDiv
	writeOperand(sb, e.Y, thisPrec, rightNeedsParenAtSamePrec)
}

// writeOperand renders child, wrapping it in parentheses when its own
// precedence is lower than the parent's (or equal, for the right operand of
// a non-associative operator).
func writeOperand(sb *strings.Builder, child Expr, parentPrec int, parenAtEqual bool) {
	childPrec := child.precedence()
	needsParen := childPrec < parentPrec || (parenAtEqual && childPrec == parentPrec)
	if needsParen {
		sb.WriteByte('(')
		child.writeExpr(sb)
		sb.WriteByte(')')
		return
	}
	child.writeExpr(sb)
}

// GetReferencedCells returns the valid positions syntactically appearing in
// expr, deduplicated, in the AST's traversal order.
func GetReferencedCells(expr Expr) []Position {
	var out []Position
	expr.collectRefs(make(map[Position]struct{}), &out)
	return out
}

// GetExpression renders expr back to text with minimal parenthesization
// consistent with precedence and left associativity. Whitespace is elided.
func GetExpression(expr Expr) string {
	var sb strings.Builder
	expr.writeExpr(&sb)
	return sb.String()
}
