package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger configures console logging on stderr so game output on stdout
// stays clean.
func setupLogger(debug bool, level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
