//go:build !linux

package main

import (
	"fmt"

	"github.com/gouline/sumem/process"
)

const (
	defaultSource  = sourceAuto
	platformSource = sourcePsutil
)

func newProcfsLister() (process.ProcessLister, error) {
	return nil, fmt.Errorf("process source %q is only available on linux", sourceProcfs)
}
