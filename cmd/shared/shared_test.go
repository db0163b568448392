package shared

import (
	"context"
	"testing"

	"shrike/tutil/pkg/config"

	"github.com/urfave/cli/v3"
)

func TestGetFlags(t *testing.T) {
	t.Parallel()

	flags := GetFlags()

	if len(flags) == 0 {
		t.Fatal("GetFlags() should return at least one flag")
	}

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		for _, name := range flag.Names() {
			flagNames[name] = true
		}
	}

	for _, want := range []string{StreamFlag, VerboseFlag} {
		if !flagNames[want] {
			t.Errorf("GetFlags() missing flag %q", want)
		}
	}
}

// runParse executes a throwaway command so that urfave/cli populates the
// flag values ParseConfig reads.
func runParse(t *testing.T, args []string) (*config.Config, error) {
	t.Helper()

	var cfg *config.Config
	var parseErr error

	cmd := &cli.Command{
		Name:  "test",
		Flags: GetFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, parseErr = ParseConfig(cmd)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("cmd.Run(): %s", err)
	}
	return cfg, parseErr
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStream config.Stream
		wantErr    bool
	}{
		{"defaults to stdout", nil, config.StreamStdout, false},
		{"explicit stderr", []string{"--stream", "stderr"}, config.StreamStderr, false},
		{"short flag stdin", []string{"-s", "stdin"}, config.StreamStdin, false},
		{"unknown stream", []string{"--stream", "bogus"}, 0, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := runParse(t, tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("ParseConfig() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() unexpected error: %s", err)
			}
			if cfg.Stream != tc.wantStream {
				t.Errorf("cfg.Stream = %v, want %v", cfg.Stream, tc.wantStream)
			}
		})
	}
}

func TestParseConfig_Verbose(t *testing.T) {
	t.Parallel()

	cfg, err := runParse(t, []string{"--verbose"})
	if err != nil {
		t.Fatalf("ParseConfig() unexpected error: %s", err)
	}
	if !cfg.Verbose {
		t.Error("cfg.Verbose = false, want true")
	}
}
