package internal

import "strconv"

// ErrorCategory enumerates the kinds of FormulaError.
type ErrorCategory uint8

const (
	// ErrRef marks a reference to an invalid (out-of-bounds) position.
	ErrRef ErrorCategory = iota
	// ErrValue marks a cell value that could not be coerced to a number.
	ErrValue
	// ErrArithmetic marks an arithmetic operation with a non-finite result.
	ErrArithmetic
)

// FormulaError is a legitimate Value result, not an exception: it
// propagates through further computation exactly like any other value.
type FormulaError struct {
	Category ErrorCategory
}

func (fe FormulaError) Error() string {
	return fe.String()
}

// String renders the stable, distinguishable short tag for fe's category.
func (fe FormulaError) String() string {
	switch fe.Category {
	case ErrRef:
		return "#REF!"
	case ErrValue:
		return "#VALUE!"
	case ErrArithmetic:
		return "#ARITHM!"
	default:
		return "#ERROR!"
	}
}

// Value is a tagged union of {string, number, FormulaError}. The zero value
// is the empty string.
type Value struct {
	str  string
	num  float64
	ferr FormulaError
	kind valueKind
}

type valueKind uint8

const (
	valueString valueKind = iota
	valueNumber
	valueError
)

// StringValue builds a string-kind Value.
func StringValue(s string) Value { return Value{kind: valueString, str: s} }

// NumberValue builds a number-kind Value.
func NumberValue(n float64) Value { return Value{kind: valueNumber, num: n} }

// ErrorValue builds an error-kind Value.
func ErrorValue(fe FormulaError) Value { return Value{kind: valueError, ferr: fe} }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == valueString }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == valueNumber }

// IsError reports whether v holds a FormulaError.
func (v Value) IsError() bool { return v.kind == valueError }

// AsString returns the underlying string and whether v holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == valueString }

// AsNumber returns the underlying number and whether v holds one.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == valueNumber }

// AsError returns the underlying FormulaError and whether v holds one.
func (v Value) AsError() (FormulaError, bool) { return v.ferr, v.kind == valueError }

// String renders v in its natural display form: numbers in default double
// formatting, strings verbatim, FormulaError as its short tag.
func (v Value) String() string {
	switch v.kind {
	case valueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case valueError:
		return v.ferr.String()
	default:
		return v.str
	}
}
