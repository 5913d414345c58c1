package app

import (
	"io"
	"os"
)

// App holds all shared mutable state for the CLI. It is created once
// per invocation and threaded into every command package. The streams
// default to the process streams and are replaced by the root command's
// PersistentPreRunE, so tests can drive the whole tree with buffers.
type App struct {
	// I/O
	OutWriter io.Writer
	ErrWriter io.Writer
	InReader  io.Reader

	// Flags
	DecodeFlag bool
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
		InReader:  os.Stdin,
	}
}
