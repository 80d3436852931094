//go:build linux

package main

import (
	"github.com/gouline/sumem/process"
	"github.com/gouline/sumem/process_linux"
)

const (
	defaultSource  = sourceAuto
	platformSource = sourceProcfs
)

func newProcfsLister() (process.ProcessLister, error) {
	return process_linux.NewProcessFinder(), nil
}
