// Package config holds the CLI configuration shared by the tutil commands.
package config

import (
	"fmt"
	"os"
	"time"
)

// Stream identifies which standard stream a command should inspect.
type Stream int

const (
	StreamStdout Stream = iota
	StreamStderr
	StreamStdin
)

func (s Stream) String() string {
	switch s {
	case StreamStdout:
		return "stdout"
	case StreamStderr:
		return "stderr"
	case StreamStdin:
		return "stdin"
	default:
		return ""
	}
}

// File returns the process handle for the stream. The handle is borrowed
// from the process; callers must not close it.
func (s Stream) File() *os.File {
	switch s {
	case StreamStdout:
		return os.Stdout
	case StreamStderr:
		return os.Stderr
	case StreamStdin:
		return os.Stdin
	default:
		return nil
	}
}

// ParseStream maps a --stream flag value to a Stream. An empty value
// defaults to stdout.
func ParseStream(name string) (Stream, error) {
	switch name {
	case "stdout", "":
		return StreamStdout, nil
	case "stderr":
		return StreamStderr, nil
	case "stdin":
		return StreamStdin, nil
	default:
		return 0, fmt.Errorf("unknown stream %q, must be stdout, stderr or stdin", name)
	}
}

// Config is the configuration for a single command invocation.
type Config struct {
	Stream   Stream
	Interval time.Duration // polling interval for watch, ignored by size
	Verbose  bool
}

func (c *Config) Validate() []error {
	var errors []error

	if c.Stream.File() == nil {
		errors = append(errors, fmt.Errorf("'--stream' must be stdout, stderr or stdin"))
	}

	if c.Interval < 0 {
		errors = append(errors, fmt.Errorf("'--interval' must not be negative"))
	}

	return errors
}
