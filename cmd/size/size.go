// Package size implements the one-shot terminal size command.
package size

import (
	"context"
	"fmt"

	"shrike/tutil/cmd/shared"
	"shrike/tutil/pkg/log"
	"shrike/tutil/pkg/screen"

	"github.com/urfave/cli/v3"
)

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "size",
		Usage: "Print the size of the terminal attached to a standard stream",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.ParseConfig(cmd)
			if err != nil {
				return err
			}

			if errors := cfg.Validate(); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			s, ok, err := screen.Query(cfg.Stream.File())
			if err != nil {
				return fmt.Errorf("querying %s: %s", cfg.Stream, err)
			}
			if !ok {
				return fmt.Errorf("no terminal attached to %s", cfg.Stream)
			}

			log.Msg("%s\n", s)
			return nil
		},
		Flags: shared.GetFlags(),
	}
}
