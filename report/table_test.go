package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	table := NewTable(
		ColumnSpec{Header: "N", AlignRight: true},
		ColumnSpec{Header: "VALUE"},
	)
	table.AddRow("10", "ten")
	table.AddRow("7")
	table.AddRow("", "blank")

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))

	expected := " N  VALUE\n" +
		"--  -----\n" +
		"10  ten\n" +
		" 7  \n" +
		"    blank\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableColoredCellWidth(t *testing.T) {
	table := NewTable(
		ColumnSpec{Header: "A"},
		ColumnSpec{Header: "B"},
	)
	table.AddRow("\033[31mxy\033[0m", "z")

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))

	expected := "A   B\n" +
		"--  -\n" +
		"\033[31mxy\033[0m  z\n"
	assert.Equal(t, expected, buf.String())
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		s        string
		expected int
		desc     string
	}{
		{s: "", expected: 0, desc: "empty"},
		{s: "plain", expected: 5, desc: "no escapes"},
		{s: "\033[32mok\033[0m", expected: 2, desc: "colored"},
		{s: "µs", expected: 2, desc: "multi-byte runes"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, visibleLength(test.s), test.desc)
	}
}
