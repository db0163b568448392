package watch

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}

	if cmd.Name != "watch" {
		t.Errorf("command name = %q; want %q", cmd.Name, "watch")
	}

	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}
}

func TestWatchCommand_RedirectedStdout(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe(): %s", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = oldStdout
		w.Close()
		r.Close()
	}()

	runErr := GetCommand().Run(context.Background(), []string{"watch"})

	os.Stdout = oldStdout

	if runErr == nil {
		t.Fatal("watch command succeeded against a pipe")
	}
	if !strings.Contains(runErr.Error(), "no terminal attached to stdout") {
		t.Errorf("unexpected error: %s", runErr)
	}
}

func TestWatchCommand_NegativeInterval(t *testing.T) {
	t.Parallel()

	err := GetCommand().Run(context.Background(), []string{"watch", "--interval=-1s"})
	if err == nil {
		t.Fatal("watch command accepted a negative interval")
	}
}
