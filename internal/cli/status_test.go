package cli

import (
	"strings"
	"testing"
)

func TestStatusReporter(t *testing.T) {
	var buf strings.Builder
	r := NewStatusReporter(&buf)

	r.Progress("Week 1 data scraped successfully.")
	r.Error("An error occurred: fetching week 2: timeout")
	r.Finished()

	want := "Week 1 data scraped successfully.\n" +
		"An error occurred: fetching week 2: timeout\n" +
		"Done!\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"start-week", "end-week", "config", "headful", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not defined", name)
		}
	}

	if got := cmd.Flags().Lookup("config").DefValue; got != "config.ini" {
		t.Errorf("--config default = %q, want config.ini", got)
	}
}
