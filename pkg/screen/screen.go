// Package screen reports the dimensions of the terminal attached to a
// standard stream. It supports Unix systems (Linux, Darwin, BSDs) via the
// TIOCGWINSZ ioctl and Windows via the console screen-buffer API; on any
// other platform every query reports that no terminal is attached.
//
// Queries never cache: terminal geometry changes whenever the user resizes
// the window, so each call asks the OS again.
package screen

import (
	"fmt"
	"os"
)

// Size represents the dimensions of a terminal window in character cells.
type Size struct {
	Cols int // Number of columns (width) of the terminal
	Rows int // Number of rows (height) of the terminal
}

// String formats the size as "COLSxROWS", e.g. "80x24".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// QueryError reports that the OS size query itself failed, as opposed to the
// stream simply not being attached to a terminal. Err holds the OS error.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("querying terminal size: %s: %s", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Query reports the size of the terminal attached to f.
//
// There are three outcomes. If f is attached to a terminal and the OS
// reports its geometry, Query returns the size with ok == true. If f is not
// attached to a terminal (redirected to a file or pipe, or the platform has
// no query mechanism), ok is false and err is nil; callers are expected to
// branch on this routinely and pick their own fallback. If the OS query
// fails for any other reason (e.g. an invalid descriptor), err is a
// *QueryError wrapping the OS error.
//
// A successful query always has size.Cols > 0 and size.Rows > 0; geometries
// the OS reports as zero degrade to ok == false.
//
// f is borrowed for the duration of the call and never closed or mutated.
func Query(f *os.File) (size Size, ok bool, err error) {
	return query(f)
}

// Stdout queries the terminal attached to standard output.
func Stdout() (Size, bool, error) {
	return Query(os.Stdout)
}

// Stderr queries the terminal attached to standard error.
func Stderr() (Size, bool, error) {
	return Query(os.Stderr)
}

// Stdin queries the terminal attached to standard input.
func Stdin() (Size, bool, error) {
	return Query(os.Stdin)
}

// Width reports only the column count of the terminal attached to f.
func Width(f *os.File) (int, bool, error) {
	size, ok, err := Query(f)
	return size.Cols, ok, err
}

// Height reports only the row count of the terminal attached to f.
func Height(f *os.File) (int, bool, error) {
	size, ok, err := Query(f)
	return size.Rows, ok, err
}
