// Package process_ps lists processes by running ps(1)
package process_ps

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gouline/sumem/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const sourceName = "ps"

// DefaultTimeout bounds a single ps invocation
const DefaultTimeout = 5 * time.Second

var psArgs = []string{"-A", "-o", "pid,rss,command"}

var lineRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(.+)$`)

// RunFunc executes a command and returns its standard output
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// PsProcessLister implements process.ProcessLister on top of ps
type PsProcessLister struct {
	run     RunFunc
	timeout time.Duration
	log     *logger.Logger
}

// NewProcessLister creates a lister that runs the system ps binary
func NewProcessLister() *PsProcessLister {
	return NewProcessListerWithRunner(runCommand)
}

// NewProcessListerWithRunner creates a lister that obtains ps output through run
func NewProcessListerWithRunner(run RunFunc) *PsProcessLister {
	return &PsProcessLister{
		run:     run,
		timeout: DefaultTimeout,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, sourceName)),
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ListProcesses runs ps once and parses its output
func (l *PsProcessLister) ListProcesses() ([]process.ProcessInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	output, err := l.run(ctx, "ps", psArgs...)
	if err != nil {
		return nil, process.NewEnumerationError(sourceName, err)
	}

	procs, skipped, err := ParseOutput(string(output))
	if err != nil {
		return nil, process.NewEnumerationError(sourceName, err)
	}
	if skipped > 0 {
		l.log.Debugln("Skipped", skipped, "unparseable ps lines")
	}

	return procs, nil
}

// ParseOutput parses `ps -A -o pid,rss,command` output.
// The first line is the header. Lines that do not look like "pid rss command"
// are skipped and counted. rss is reported by ps in KB and converted to bytes.
func ParseOutput(output string) ([]process.ProcessInfo, int, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, 0, fmt.Errorf("%w: empty ps output", process.ErrMalformedOutput)
	}

	lines := strings.Split(output, "\n")

	// Header line must be present
	header := strings.Fields(lines[0])
	if len(header) < 3 || !strings.EqualFold(header[0], "PID") {
		return nil, 0, fmt.Errorf("%w: unexpected ps header %q", process.ErrMalformedOutput, lines[0])
	}

	var (
		processes []process.ProcessInfo
		skipped   int
	)

	for _, line := range lines[1:] {
		match := lineRe.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			skipped++
			continue
		}

		pid, err := strconv.Atoi(match[1])
		if err != nil {
			skipped++
			continue
		}
		rss, err := strconv.ParseUint(match[2], 10, 64)
		if err != nil {
			skipped++
			continue
		}

		command := match[3]
		processes = append(processes, process.ProcessInfo{
			PID:     process.ProcessID(pid),
			Name:    process.NameFromCommand(command),
			Command: command,
			Memory:  rss * 1024,
		})
	}

	return processes, skipped, nil
}
