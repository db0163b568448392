package screen

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is the polling interval Watch uses when the caller
// passes a non-positive one.
const DefaultWatchInterval = 1 * time.Second

// Watch polls the terminal attached to f and delivers its size whenever it
// changes, starting with the current size. The channel is closed when ctx is
// done. Nothing is delivered while f has no terminal attached; if one appears
// later (or a query transiently fails), the next tick picks it up.
func Watch(ctx context.Context, f *os.File, interval time.Duration) <-chan Size {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ch := make(chan Size, 1)
	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last Size
		for {
			if size, ok, err := Query(f); err == nil && ok && size != last {
				select {
				case ch <- size:
					last = size
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
