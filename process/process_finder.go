package process

// ProcessLister takes a snapshot of all running processes
type ProcessLister interface {
	// ListProcesses returns every process visible to the caller, in enumeration order
	ListProcesses() ([]ProcessInfo, error)
}

// ListerFunc adapts an ordinary function to the ProcessLister interface
type ListerFunc func() ([]ProcessInfo, error)

// ListProcesses calls f()
func (f ListerFunc) ListProcesses() ([]ProcessInfo, error) {
	return f()
}
