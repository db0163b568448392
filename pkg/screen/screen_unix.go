//go:build unix

package screen

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func query(f *os.File) (Size, bool, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		if isNotTerminal(err) {
			return Size{}, false, nil
		}
		return Size{}, false, &QueryError{Op: "ioctl(TIOCGWINSZ)", Err: err}
	}

	// Some virtual descriptors answer the ioctl with a zeroed struct.
	if ws.Col == 0 || ws.Row == 0 {
		return Size{}, false, nil
	}

	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true, nil
}

// isNotTerminal reports whether err is the kernel's way of saying the
// descriptor is valid but not a terminal device. Anything else (EBADF,
// EPERM, ...) is a real query failure and must stay visible to the caller.
func isNotTerminal(err error) bool {
	for _, errno := range []error{unix.ENOTTY, unix.ENXIO, unix.ENODEV, unix.EINVAL} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
