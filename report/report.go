// Package report prints the results of a memory query
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gouline/sumem/memory"
	"github.com/gouline/sumem/process"
)

// WriteNoMatches reports that nothing matched term
func WriteNoMatches(w io.Writer, term string) error {
	_, err := fmt.Fprintf(w, "No processes found matching %q\n", term)
	return err
}

// WriteList prints the matched processes, largest memory first, followed by a blank line
func WriteList(w io.Writer, term string, processes []process.ProcessInfo) error {
	if _, err := fmt.Fprintf(w, "Found %d process(es) matching %q:\n\n", len(processes), term); err != nil {
		return err
	}

	table := NewTable(
		ColumnSpec{Header: "PID", MinWidth: 6, AlignRight: true},
		ColumnSpec{Header: "MEMORY", MinWidth: 12, AlignRight: true},
		ColumnSpec{Header: "NAME"},
		ColumnSpec{Header: "COMMAND"},
	).WithIndent("  ")

	for _, p := range memory.SortByMemory(processes) {
		table.AddRow(strconv.Itoa(int(p.PID)), memory.FormatBytes(p.Memory), p.Name, p.Command)
	}

	if err := table.Render(w); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w)
	return err
}

// WriteTotal prints the combined memory of processes
func WriteTotal(w io.Writer, processes []process.ProcessInfo) error {
	_, err := fmt.Fprintf(w, "Total memory used by %d process(es): %s\n",
		len(processes), memory.FormatBytes(memory.CalculateTotalMemory(processes)))
	return err
}
