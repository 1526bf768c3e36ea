package gosheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheet_EndToEnd(t *testing.T) {
	s := NewSheet()

	require.NoError(t, s.SetCell(ParsePosition("A1"), "hi"))
	require.NoError(t, s.SetCell(ParsePosition("B2"), "=1+1"))

	var out strings.Builder
	require.NoError(t, s.PrintValues(&out))
	assert.Equal(t, "hi\t\n\t2\n", out.String())

	var texts strings.Builder
	require.NoError(t, s.PrintTexts(&texts))
	assert.Equal(t, "hi\t\n\t=1+1\n", texts.String())
}

func TestSheet_InvalidPositionError(t *testing.T) {
	s := NewSheet()
	err := s.SetCell(Position{Row: -1, Col: 0}, "1")
	require.Error(t, err)

	var invalid *InvalidPositionError
	require.ErrorAs(t, err, &invalid)
}

func TestSheet_CircularDependencyError(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.SetCell(ParsePosition("A1"), "=B1"))
	err := s.SetCell(ParsePosition("B1"), "=A1")
	require.Error(t, err)

	var circular *CircularDependencyError
	require.ErrorAs(t, err, &circular)
}
