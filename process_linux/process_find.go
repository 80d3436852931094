//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gouline/sumem/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/unix"
)

const sourceName = "procfs"

// LinuxProcessFinder lists processes by walking procfs
type LinuxProcessFinder struct {
	root     string
	selfPID  int
	pageSize uint64
	log      *logger.Logger
}

// NewProcessFinder creates a LinuxProcessFinder reading /proc
func NewProcessFinder() *LinuxProcessFinder {
	return newProcessFinder("/proc", os.Getpid())
}

func newProcessFinder(root string, selfPID int) *LinuxProcessFinder {
	return &LinuxProcessFinder{
		root:     root,
		selfPID:  selfPID,
		pageSize: uint64(unix.Getpagesize()),
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, sourceName)),
	}
}

// ListProcesses returns information about all running processes except ourselves
func (f *LinuxProcessFinder) ListProcesses() ([]process.ProcessInfo, error) {
	// List all directories in /proc that are numbers (PIDs)
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, process.NewEnumerationError(sourceName, fmt.Errorf("read %s: %w", f.root, err))
	}

	var results []process.ProcessInfo

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}
		if pid == f.selfPID {
			continue
		}

		info, err := f.getProcessInfo(process.ProcessID(pid))
		if err != nil {
			// Process may have terminated while we were reading
			f.log.Debugln("Skipping process", pid, err)
			continue
		}

		results = append(results, *info)
	}

	f.log.Debugln("Listed", len(results), "processes from", f.root)

	return results, nil
}

// getProcessInfo reads a single process from <root>/<pid>
func (f *LinuxProcessFinder) getProcessInfo(pid process.ProcessID) (*process.ProcessInfo, error) {
	procPath := filepath.Join(f.root, strconv.Itoa(int(pid)))

	nameBytes, err := os.ReadFile(filepath.Join(procPath, "comm"))
	if err != nil {
		return nil, fmt.Errorf("failed to read process name: %w", err)
	}
	comm := strings.TrimSpace(string(nameBytes))

	cmdlineBytes, err := os.ReadFile(filepath.Join(procPath, "cmdline"))
	if err != nil {
		return nil, fmt.Errorf("failed to read process cmdline: %w", err)
	}

	command := joinCmdline(cmdlineBytes)
	if command == "" {
		// Kernel threads have no command line, show them the way ps does
		command = "[" + comm + "]"
	}

	memory, err := f.readStatmRSS(procPath)
	if err != nil {
		memory = readStatusRSS(procPath)
	}

	return &process.ProcessInfo{
		PID:     pid,
		Name:    process.NameFromCommand(command),
		Command: command,
		Memory:  memory,
	}, nil
}

// joinCmdline turns the NUL separated /proc/<pid>/cmdline into a single line
func joinCmdline(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	if len(b) == 0 {
		return ""
	}

	args := bytes.Split(b, []byte{0})
	return strings.TrimSpace(string(bytes.Join(args, []byte{' '})))
}

// readStatmRSS returns the resident set size from /proc/<pid>/statm in bytes
func (f *LinuxProcessFinder) readStatmRSS(procPath string) (uint64, error) {
	data, err := os.ReadFile(filepath.Join(procPath, "statm"))
	if err != nil {
		return 0, err
	}

	// size resident shared text lib data dt, all in pages
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0, errors.New("invalid statm format")
	}

	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid statm resident value: %w", err)
	}

	return pages * f.pageSize, nil
}

// readStatusRSS returns VmRSS from /proc/<pid>/status in bytes, or 0 when unavailable
func readStatusRSS(procPath string) uint64 {
	statusBytes, err := os.ReadFile(filepath.Join(procPath, "status"))
	if err != nil {
		return 0
	}

	for _, line := range strings.Split(string(statusBytes), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "VmRSS" {
			continue
		}

		// Extract memory usage (format: "1234 kB")
		memParts := strings.Fields(parts[1])
		if len(memParts) == 0 {
			return 0
		}
		memVal, err := strconv.ParseUint(memParts[0], 10, 64)
		if err != nil {
			return 0
		}
		if len(memParts) > 1 && memParts[1] == "kB" {
			return memVal * 1024
		}
		return memVal
	}

	return 0
}
