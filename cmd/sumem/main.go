package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gouline/sumem/match"
	"github.com/gouline/sumem/memory"
	"github.com/gouline/sumem/process"
	"github.com/gouline/sumem/report"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "1.0.0"

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "sumem"))

// SumemOptions holds everything configurable from the command line.
type SumemOptions struct {
	// List prints every matched process before the total.
	List bool
	// Excludes are whole-word patterns; a process matching any of them is dropped.
	Excludes []string
	// Source names the process source used to take the snapshot.
	Source string
	// MinMemory is a human readable size; smaller processes are ignored.
	MinMemory string

	newLister func(source string) (process.ProcessLister, error)
}

// NewSumemOptions creates a new SumemOptions with platform defaults.
func NewSumemOptions() *SumemOptions {
	return &SumemOptions{
		Source:    defaultSource,
		newLister: newLister,
	}
}

func main() {
	cmd := newRootCommand(NewSumemOptions())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(opts *SumemOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sumem [flags] <search-key>",
		Short: "Sum the memory usage of application processes",
		Long: `sumem finds every running process whose name or command line contains
<search-key> as a whole word, ignoring case, and prints the total resident
memory they use.`,
		Example: `  sumem app                    # Sum memory of all processes matching "app"
  sumem --list app             # List and sum memory of all "app" processes
  sumem -e helper code         # Sum "code" processes except helpers
  sumem -m 100MB chrome        # Only count chrome processes using 100MB or more`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Run(cmd.OutOrStdout(), args[0])
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

// AddFlags adds flags to fs and binds them to options.
func (opts *SumemOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.List, "list", "l", opts.List, "List all matched processes, largest first.")
	fs.StringArrayVarP(&opts.Excludes, "exclude", "e", opts.Excludes, "Exclude processes matching this whole word. May be repeated.")
	fs.StringVarP(&opts.Source, "source", "s", opts.Source, "Process source, one of: "+sourceNames()+".")
	fs.StringVarP(&opts.MinMemory, "min-memory", "m", opts.MinMemory, "Ignore processes using less memory than this size, e.g. 100MB.")
}

// Run takes one process snapshot, selects the processes matching term and reports their memory.
func (opts *SumemOptions) Run(out io.Writer, term string) error {
	selector, err := match.NewSelector(term, opts.Excludes...)
	if err != nil {
		return err
	}

	var minMemory uint64
	if opts.MinMemory != "" {
		if minMemory, err = memory.ParseSize(opts.MinMemory); err != nil {
			return fmt.Errorf("invalid --min-memory: %w", err)
		}
	}

	lister, err := opts.newLister(opts.Source)
	if err != nil {
		return err
	}

	processes, err := lister.ListProcesses()
	if err != nil {
		return err
	}

	matched := memory.FilterMinMemory(selector.Select(processes), minMemory)
	log.Debugln("Selected", len(matched), "of", len(processes), "processes from", opts.Source)

	if len(matched) == 0 {
		return report.WriteNoMatches(out, term)
	}

	if opts.List {
		if err := report.WriteList(out, term, matched); err != nil {
			return err
		}
	}

	return report.WriteTotal(out, matched)
}
