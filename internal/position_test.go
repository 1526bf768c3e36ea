package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsValid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"origin", Position{Row: 0, Col: 0}, true},
		{"max row bound", Position{Row: MaxRows - 1, Col: 0}, true},
		{"past max row", Position{Row: MaxRows, Col: 0}, false},
		{"past max col", Position{Row: 0, Col: MaxCols}, false},
		{"negative row", Position{Row: -1, Col: 0}, false},
		{"negative col", Position{Row: 0, Col: -1}, false},
		{"invalid sentinel", InvalidPosition, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.IsValid())
		})
	}
}

func TestPosition_String(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Row: 0, Col: 0}, "A1"},
		{Position{Row: 0, Col: 1}, "B1"},
		{Position{Row: 1, Col: 0}, "A2"},
		{Position{Row: 0, Col: 25}, "Z1"},
		{Position{Row: 0, Col: 26}, "AA1"},
		{Position{Row: 0, Col: 27}, "AB1"},
		{Position{Row: 0, Col: 51}, "AZ1"},
		{Position{Row: 0, Col: 52}, "BA1"},
		{Position{Row: 99, Col: 701}, "ZZ100"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		label string
		want  Position
	}{
		{"A1", Position{Row: 0, Col: 0}},
		{"B1", Position{Row: 0, Col: 1}},
		{"A2", Position{Row: 1, Col: 0}},
		{"AA1", Position{Row: 0, Col: 26}},
		{"ZZ100", Position{Row: 99, Col: 701}},
		{"a1", InvalidPosition},  // lowercase rejected
		{"1A", InvalidPosition},  // digits before letters
		{"", InvalidPosition},    // empty
		{"A", InvalidPosition},   // no row
		{"1", InvalidPosition},   // no column
		{"A0", InvalidPosition},  // rows are 1-indexed on the wire
		{"A01", InvalidPosition}, // leading zero
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePosition(tt.label))
		})
	}
}

// TestParsePosition_OutOfRangeColumn checks that a syntactically well-formed
// but out-of-range column label parses to a position that fails IsValid
// (and so is a Ref error at formula-evaluation time, not a parse error).
func TestParsePosition_OutOfRangeColumn(t *testing.T) {
	pos := ParsePosition("ZZZZZZ1")
	assert.NotEqual(t, InvalidPosition, pos)
	assert.False(t, pos.IsValid())
	assert.Equal(t, 0, pos.Row)
}

func TestPosition_RoundTrip(t *testing.T) {
	positions := []Position{
		{Row: 0, Col: 0},
		{Row: 5, Col: 5},
		{Row: 0, Col: 26},
		{Row: 1233, Col: 4095},
	}
	for _, pos := range positions {
		label := pos.String()
		assert.Equal(t, pos, ParsePosition(label), "round-trip through %q", label)
	}
}
