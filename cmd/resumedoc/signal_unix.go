//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a batch: in-flight files finish with their fallback
// documents and queued files are reported as cancelled.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
