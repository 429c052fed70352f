// Package logging provides chesscore's single structured logger,
// wrapping github.com/op/go-logging the way the closest full engine in
// the corpus, FrankyGo, does (§4.9). It is used only for init-time
// diagnostics (the magic-table build in package engine) and for fatal
// errors and warnings in cmd/perft — never inside GenerateMoves,
// MakeMove/TakeMove, or Perft, which stay allocation- and syscall-free.
// InitializationError is raised as a panic, not logged here, and
// cmd/perft prints its result table to stdout rather than logging it.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

// Infof logs a one-shot informational message, e.g. attack-table
// initialization completing.
func Infof(format string, args ...interface{}) { log.Infof(format, args...) }

// Warningf logs a recoverable anomaly.
func Warningf(format string, args ...interface{}) { log.Warningf(format, args...) }

// Errorf logs a failure the caller is about to return or fatal out on.
func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }

// Fatalf logs at critical level and exits the process, mirroring the
// teacher's log.Fatalln in perft/perft.go for unrecoverable CLI
// argument errors.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
