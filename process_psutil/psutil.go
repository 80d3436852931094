// Package process_psutil lists processes through gopsutil, which works on every
// platform gopsutil supports.
package process_psutil

import (
	"fmt"

	"github.com/gouline/sumem/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	psutil "github.com/shirou/gopsutil/v3/process"
)

const sourceName = "psutil"

// handle is the subset of *psutil.Process the lister reads
type handle interface {
	Cmdline() (string, error)
	Name() (string, error)
	MemoryInfo() (*psutil.MemoryInfoStat, error)
}

// PsutilProcessLister implements process.ProcessLister with gopsutil
type PsutilProcessLister struct {
	processes func() ([]*psutil.Process, error)
	log       *logger.Logger
}

// NewProcessLister creates a gopsutil backed lister
func NewProcessLister() *PsutilProcessLister {
	return &PsutilProcessLister{
		processes: psutil.Processes,
		log:       logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, sourceName)),
	}
}

// ListProcesses lists all processes on the host
func (l *PsutilProcessLister) ListProcesses() ([]process.ProcessInfo, error) {
	procs, err := l.processes()
	if err != nil {
		return nil, process.NewEnumerationError(sourceName, err)
	}

	results := make([]process.ProcessInfo, 0, len(procs))
	for _, proc := range procs {
		info, err := toProcessInfo(proc.Pid, proc)
		if err != nil {
			// exited or access denied
			l.log.Debugln("Skipping process", proc.Pid, err)
			continue
		}
		results = append(results, info)
	}

	l.log.Debugln("Listed", len(results), "of", len(procs), "processes")

	return results, nil
}

func toProcessInfo(pid int32, h handle) (process.ProcessInfo, error) {
	command, err := h.Cmdline()
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("unable to get command line of %d: %w", pid, err)
	}
	if command == "" {
		name, err := h.Name()
		if err != nil {
			return process.ProcessInfo{}, fmt.Errorf("unable to get name of %d: %w", pid, err)
		}
		command = "[" + name + "]"
	}

	memoryInfo, err := h.MemoryInfo()
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("unable to get memory information of %d: %w", pid, err)
	}

	var rss uint64
	if memoryInfo != nil {
		rss = memoryInfo.RSS
	}

	return process.ProcessInfo{
		PID:     process.ProcessID(pid),
		Name:    process.NameFromCommand(command),
		Command: command,
		Memory:  rss,
	}, nil
}
