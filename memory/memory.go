// Package memory sums and formats resident memory of process snapshots
package memory

import (
	"fmt"
	"sort"

	"github.com/gouline/sumem/process"

	units "github.com/docker/go-units"
)

var unitNames = []string{"B", "KB", "MB", "GB", "TB"}

// CalculateTotalMemory sums the resident memory of processes in bytes
func CalculateTotalMemory(processes []process.ProcessInfo) uint64 {
	var total uint64
	for _, p := range processes {
		total += p.Memory
	}
	return total
}

// FormatBytes renders a byte count with two decimals and a binary unit,
// e.g. 1536 -> "1.50 KB". TB is the largest unit used. Exact ties round up,
// so 1152 -> "1.13 KB".
func FormatBytes(bytes uint64) string {
	var divisor uint64 = 1
	unitIndex := 0

	for bytes/divisor >= 1024 && unitIndex < len(unitNames)-1 {
		divisor *= 1024
		unitIndex++
	}

	// remainder < divisor <= 2^40, so remainder*100 cannot overflow
	whole := bytes / divisor
	remainder := (bytes % divisor) * 100
	hundredths := remainder / divisor
	if 2*(remainder%divisor) >= divisor {
		hundredths++
	}
	if hundredths == 100 {
		whole++
		hundredths = 0
	}

	return fmt.Sprintf("%d.%02d %s", whole, hundredths, unitNames[unitIndex])
}

// SortByMemory returns a copy of processes ordered by memory, largest first.
// Processes using the same amount keep their relative order.
func SortByMemory(processes []process.ProcessInfo) []process.ProcessInfo {
	sorted := make([]process.ProcessInfo, len(processes))
	copy(sorted, processes)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Memory > sorted[j].Memory
	})

	return sorted
}

// FilterMinMemory keeps processes using at least min bytes
func FilterMinMemory(processes []process.ProcessInfo, min uint64) []process.ProcessInfo {
	result := make([]process.ProcessInfo, 0, len(processes))
	for _, p := range processes {
		if p.Memory >= min {
			result = append(result, p)
		}
	}
	return result
}

// ParseSize parses a human readable size such as "512MB", "1g" or "4096"
// using binary multiples. Signed values are rejected by the parser.
func ParseSize(size string) (uint64, error) {
	n, err := units.RAMInBytes(size)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", size, err)
	}
	return uint64(n), nil
}
