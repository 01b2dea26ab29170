package main

import (
	"log"
	"os"
	"os/signal"
	"strings"

	"gocat/cmd"
	"gocat/pkg/logging"

	"golang.org/x/term"
)

func main() {
	// An interrupt ends the process at once; output written so far stays.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		syncLogger()
		os.Exit(int(cmd.ExitKilledBySigint))
	}()

	err := cmd.Execute()
	syncLogger()
	if err != nil {
		cmd.ReportError(os.Stderr, err, useColor(os.Stderr))
	}
	os.Exit(int(cmd.ExitCodeFor(err)))
}

// syncLogger flushes the logger when stderr supports fsync.
func syncLogger() {
	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") && !strings.Contains(lowerErr, "inappropriate ioctl") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// useColor reports whether error output to f should be colored.
func useColor(f *os.File) bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor && term.IsTerminal(int(f.Fd()))
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
