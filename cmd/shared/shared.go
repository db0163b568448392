// Package shared contains flags and helpers used by all tutil commands.
package shared

import (
	"shrike/tutil/pkg/config"

	"github.com/urfave/cli/v3"
)

const StreamFlag = "stream"
const VerboseFlag = "verbose"

// GetFlags returns the flags every command accepts.
func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     StreamFlag,
			Aliases:  []string{"s"},
			Usage:    "Standard stream to inspect: stdout, stderr or stdin",
			Value:    "stdout",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose output",
			Required: false,
		},
	}
}

// ParseConfig builds the shared part of the configuration from the flags of cmd.
func ParseConfig(cmd *cli.Command) (*config.Config, error) {
	stream, err := config.ParseStream(cmd.String(StreamFlag))
	if err != nil {
		return nil, err
	}

	return &config.Config{
		Stream:  stream,
		Verbose: cmd.Bool(VerboseFlag),
	}, nil
}
