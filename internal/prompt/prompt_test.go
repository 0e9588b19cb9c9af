package prompt

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestAlways(t *testing.T) {
	yes := Always(true)
	no := Always(false)

	got, err := yes("integrate?")
	if err != nil || !got {
		t.Errorf("Always(true) = (%v, %v), want (true, nil)", got, err)
	}
	got, err = no("integrate?")
	if err != nil || got {
		t.Errorf("Always(false) = (%v, %v), want (false, nil)", got, err)
	}
}

func TestTerminal_NonTTYDeclines(t *testing.T) {
	// A pipe is not a terminal, so the consent func must decline without
	// blocking on a read.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	consent := Terminal(r, &out)

	got, err := consent("Add the import line?")
	if err != nil {
		t.Fatalf("consent error = %v", err)
	}
	if got {
		t.Error("non-interactive consent = true, want declined")
	}
	if !strings.Contains(out.String(), "--yes") {
		t.Errorf("output %q should mention --yes", out.String())
	}
}
