package process

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessInfo is one process as seen in a single snapshot
type ProcessInfo struct {
	PID     ProcessID // Process ID
	Name    string    // Display name, last segment of Command
	Command string    // Full command line
	Memory  uint64    // Resident Set Size in bytes
}
