package output

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewPrinter(&stdout, &stderr, false), &stdout, &stderr
}

func TestPrinter_InfoGoesToStdout(t *testing.T) {
	p, stdout, stderr := newTestPrinter()

	p.Info("looked up %d users", 3)

	if !strings.Contains(stdout.String(), "looked up 3 users") {
		t.Errorf("missing message in stdout: %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
}

func TestPrinter_ErrorGoesToStderr(t *testing.T) {
	p, stdout, stderr := newTestPrinter()

	p.Error("lookup failed")

	if !strings.Contains(stderr.String(), "[ERROR] lookup failed") {
		t.Errorf("missing message in stderr: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout output: %q", stdout.String())
	}
}

func TestPrinter_SuccessPlainMode(t *testing.T) {
	p, stdout, _ := newTestPrinter()

	p.Success("done")

	if !strings.Contains(stdout.String(), "[OK] done") {
		t.Errorf("missing plain success marker: %q", stdout.String())
	}
}

func TestResolveColors_NoColorFlag(t *testing.T) {
	if ResolveColors(true) {
		t.Error("expected colors disabled when --no-color is set")
	}
}

func TestResolveColors_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if ResolveColors(false) {
		t.Error("expected colors disabled when NO_COLOR is set")
	}
}

func TestTable_RendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"FIELD", "VALUE"})
	table.AddRow([]string{"User ID", "user-1"})
	table.AddRow([]string{"Phone", "+14155552671"})
	table.Render()

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "user-1", "+14155552671"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in table output: %q", want, out)
		}
	}
}
