package memory

import (
	"testing"

	"github.com/gouline/sumem/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotalMemory(t *testing.T) {
	tests := []struct {
		processes []process.ProcessInfo
		expected  uint64
		desc      string
	}{
		{processes: nil, expected: 0, desc: "nil snapshot"},
		{processes: []process.ProcessInfo{}, expected: 0, desc: "empty snapshot"},
		{
			processes: []process.ProcessInfo{
				{PID: 1, Name: "test", Command: "/test1", Memory: 1024},
				{PID: 2, Name: "test", Command: "/test2", Memory: 2048},
				{PID: 3, Name: "test", Command: "/test3", Memory: 512},
			},
			expected: 3584,
			desc:     "sum of all processes",
		},
		{
			processes: []process.ProcessInfo{
				{PID: 1, Memory: 300 << 40},
				{PID: 2, Memory: 1},
			},
			expected: 300<<40 + 1,
			desc:     "hundreds of terabytes stay exact",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CalculateTotalMemory(test.processes), test.desc)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    uint64
		expected string
		desc     string
	}{
		{bytes: 0, expected: "0.00 B", desc: "zero"},
		{bytes: 512, expected: "512.00 B", desc: "bytes"},
		{bytes: 1023, expected: "1023.00 B", desc: "just below a kilobyte"},
		{bytes: 1024, expected: "1.00 KB", desc: "one kilobyte"},
		{bytes: 1536, expected: "1.50 KB", desc: "fractional kilobytes"},
		{bytes: 1048576, expected: "1.00 MB", desc: "one megabyte"},
		{bytes: 1073741824, expected: "1.00 GB", desc: "one gigabyte"},
		{bytes: 1536 * 1024 * 1024, expected: "1.50 GB", desc: "fractional gigabytes"},
		{bytes: 1 << 40, expected: "1.00 TB", desc: "one terabyte"},
		{bytes: 2048 << 40, expected: "2048.00 TB", desc: "terabyte is the largest unit"},
		{bytes: 1000, expected: "1000.00 B", desc: "binary not decimal scaling"},
		{bytes: 1152, expected: "1.13 KB", desc: "exact tie rounds up"},
		{bytes: 1664 * 1024, expected: "1.63 MB", desc: "exact tie rounds up for RSS values"},
		{bytes: 1029, expected: "1.00 KB", desc: "below a tie rounds down"},
		{bytes: 1048575, expected: "1024.00 KB", desc: "rounding carries into the whole part"},
		{bytes: 1<<64 - 1, expected: "16777216.00 TB", desc: "largest value does not overflow"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FormatBytes(test.bytes), test.desc)
	}
}

func TestSortByMemory(t *testing.T) {
	processes := []process.ProcessInfo{
		{PID: 1, Memory: 100},
		{PID: 2, Memory: 300},
		{PID: 3, Memory: 100},
		{PID: 4, Memory: 200},
	}

	sorted := SortByMemory(processes)

	var order []process.ProcessID
	for _, p := range sorted {
		order = append(order, p.PID)
	}
	assert.Equal(t, []process.ProcessID{2, 4, 1, 3}, order)

	// input is left untouched
	assert.Equal(t, process.ProcessID(1), processes[0].PID)
}

func TestFilterMinMemory(t *testing.T) {
	processes := []process.ProcessInfo{
		{PID: 1, Memory: 100},
		{PID: 2, Memory: 300},
		{PID: 3, Memory: 200},
	}

	assert.Len(t, FilterMinMemory(processes, 0), 3)
	assert.Equal(t, []process.ProcessInfo{{PID: 2, Memory: 300}, {PID: 3, Memory: 200}}, FilterMinMemory(processes, 200))
	assert.Empty(t, FilterMinMemory(processes, 1000))
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		size     string
		expected uint64
		desc     string
	}{
		{size: "0", expected: 0, desc: "zero"},
		{size: "4096", expected: 4096, desc: "plain bytes"},
		{size: "1k", expected: 1024, desc: "kilobytes"},
		{size: "512MB", expected: 512 << 20, desc: "megabytes"},
		{size: "1g", expected: 1 << 30, desc: "gigabytes"},
		{size: "1.5GiB", expected: 1536 << 20, desc: "fractional gigabytes"},
	}

	for _, test := range tests {
		got, err := ParseSize(test.size)
		require.NoError(t, err, test.desc)
		assert.Equal(t, test.expected, got, test.desc)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	_, err := ParseSize("lots")
	assert.Error(t, err)

	_, err = ParseSize("-1MB")
	assert.Error(t, err)
}
