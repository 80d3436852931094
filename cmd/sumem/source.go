package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gouline/sumem/process"
	"github.com/gouline/sumem/process_ps"
	"github.com/gouline/sumem/process_psutil"
)

const (
	sourceAuto   = "auto"
	sourceProcfs = "procfs"
	sourcePs     = "ps"
	sourcePsutil = "psutil"
)

// ErrUnknownSource is returned for a --source value no lister exists for
var ErrUnknownSource = errors.New("unknown process source")

var listers = map[string]func() (process.ProcessLister, error){
	sourceProcfs: newProcfsLister,
	sourcePs:     newPsLister,
	sourcePsutil: newPsutilLister,
}

func newLister(source string) (process.ProcessLister, error) {
	if source == sourceAuto {
		source = platformSource
	}

	create, ok := listers[source]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: %s", ErrUnknownSource, source, sourceNames())
	}
	return create()
}

func sourceNames() string {
	names := []string{sourceAuto}
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return strings.Join(names, ", ")
}

func newPsLister() (process.ProcessLister, error) {
	return process_ps.NewProcessLister(), nil
}

func newPsutilLister() (process.ProcessLister, error) {
	return process_psutil.NewProcessLister(), nil
}
