package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatLog(t *testing.T) {
	log := `

{"primary":{"present":true,"x":3},"at":"2025-03-01T10:00:00Z"}

{"at":"2025-03-01T10:00:00.6Z","inventory":[{"id":995,"qty":10}],"primary":{"present":true}}
`
	var buf bytes.Buffer
	n, err := formatLog(&buf, strings.NewReader(log), false)
	if err != nil {
		t.Fatalf("formatLog() error = %v", err)
	}
	if n != 2 {
		t.Errorf("formatLog() = %d records, want 2", n)
	}

	// formatting is idempotent.
	var again bytes.Buffer
	if _, err := formatLog(&again, bytes.NewReader(buf.Bytes()), true); err != nil {
		t.Fatalf("formatLog() on formatted log error = %v", err)
	}
	if diff := cmp.Diff(buf.String(), again.String()); diff != "" {
		t.Errorf("formatted log changed (-first +second):\n%s", diff)
	}
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("formatted log has %d lines, want 2:\n%s", got, buf.String())
	}
}

func TestFormatLogInvalid(t *testing.T) {
	var buf bytes.Buffer
	n, err := formatLog(&buf, strings.NewReader(`{"at":"2025-03-01T10:00:00Z","primary":{"present":true}}`+"\n{oops\n"), false)
	if err == nil {
		t.Fatal("formatLog() should fail on invalid JSON")
	}
	if n != 1 {
		t.Errorf("formatLog() = %d records before the error, want 1", n)
	}
}
