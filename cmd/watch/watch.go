// Package watch implements the resize-watching command. It re-queries the
// terminal periodically and prints every size change; the resolver itself
// never caches, so this is the layer that reacts to window resizes.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"shrike/tutil/cmd/shared"
	"shrike/tutil/pkg/log"
	"shrike/tutil/pkg/screen"

	"github.com/muesli/cancelreader"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const intervalFlag = "interval"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Print the terminal size whenever it changes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.ParseConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Interval = cmd.Duration(intervalFlag)

			if errors := cfg.Validate(); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			f := cfg.Stream.File()
			if _, ok, err := screen.Query(f); err != nil {
				return fmt.Errorf("querying %s: %s", cfg.Stream, err)
			} else if !ok {
				return fmt.Errorf("no terminal attached to %s", cfg.Stream)
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			shared.SetupSignalHandling(cancel)
			stopOnQuitKey(ctx, cancel)

			if cfg.Verbose {
				log.InfoMsg("Watching %s every %s, 'q' or interrupt stops\n", cfg.Stream, cfg.Interval)
			}

			for s := range screen.Watch(ctx, f, cfg.Interval) {
				log.Msg("%s\n", s)
			}

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.DurationFlag{
				Name:     intervalFlag,
				Aliases:  []string{"i"},
				Usage:    "Polling interval",
				Value:    time.Second,
				Required: false,
			},
		}, shared.GetFlags()...),
	}
}

// stopOnQuitKey cancels the watch when 'q' is read from stdin. It does
// nothing when stdin is not a terminal, so piped input is left alone.
func stopOnQuitKey(ctx context.Context, cancel context.CancelFunc) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	rdr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return
	}

	go func() {
		<-ctx.Done()
		rdr.Cancel()
	}()

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := rdr.Read(buf)
			if err != nil {
				return
			}
			if n > 0 && buf[0] == 'q' {
				cancel()
				return
			}
		}
	}()
}
