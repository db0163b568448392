//go:build windows

package screen

import (
	"os"

	"golang.org/x/sys/windows"
)

func query(f *os.File) (Size, bool, error) {
	h := windows.Handle(f.Fd())

	// GetConsoleMode fails for anything that is not a console, which is how
	// Windows reports redirection to a file or pipe.
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return Size{}, false, nil
	}

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return Size{}, false, &QueryError{Op: "GetConsoleScreenBufferInfo", Err: err}
	}

	// The visible window, not the scroll-back buffer.
	cols := int(info.Window.Right-info.Window.Left) + 1
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	if cols <= 0 || rows <= 0 {
		return Size{}, false, nil
	}

	return Size{Cols: cols, Rows: rows}, true, nil
}
