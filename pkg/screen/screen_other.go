//go:build !unix && !windows

package screen

import "os"

// No query mechanism on this platform. Reporting "no terminal" keeps the
// contract identical everywhere instead of failing the caller.
func query(f *os.File) (Size, bool, error) {
	return Size{}, false, nil
}
