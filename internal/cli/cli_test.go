package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "chartkit" {
		t.Errorf("Use = %q", root.Use)
	}

	want := map[string]bool{
		"render":     false,
		"serve":      false,
		"cache":      false,
		"playground": false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v", c.Logger.GetLevel())
	}
}
