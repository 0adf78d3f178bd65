package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEvents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func smallBuilding(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "building.yaml")
	if err := os.WriteFile(path, []byte("floors: 10\nelevators: 1\nlog_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1 without arguments, got %d", code)
	}
	if !strings.Contains(stderr.String(), "usage:") {
		t.Errorf("Expected usage message, got %q", stderr.String())
	}
	if code := run([]string{"a", "b"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1 with two arguments, got %d", code)
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.txt")
	code := run([]string{"-config", smallBuilding(t), missing}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "*** File not found: "+missing) {
		t.Errorf("Expected file-not-found report, got %q", stderr.String())
	}
}

func TestRunMalformedLine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	events := writeEvents(t, "1 E-0 GoToFloor 2\nbroken line\n")
	code := run([]string{"-config", smallBuilding(t), events}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if strings.Contains(stdout.String(), "=== time") {
		t.Errorf("Expected simulation not to start, got %q", stdout.String())
	}
}

func TestRunSimulation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	events := writeEvents(t, "6 E-0 GoToFloor 7\n5 FCB-1 ButtonDown 0\n5 FCB-4 ButtonUp 0\n9 E-7 GoToFloor 2\n")
	code := run([]string{"-config", smallBuilding(t), events}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d, stderr %q", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"line 1: 6 E-0 GoToFloor 7",
		"=== time 5",
		"=== time 6",
		"=== time 9",
		"E-0          1:I  => [7]",
		"   4: U",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "=== time 5") > strings.Index(out, "=== time 6") {
		t.Errorf("Expected time 5 to be reported before time 6")
	}
	if strings.Contains(out, "   1: D") {
		t.Errorf("Expected bottom floor down call to be dropped")
	}
}
