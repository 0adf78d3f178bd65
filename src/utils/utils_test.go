package utils

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestForEachFloor(t *testing.T) {
	var visited []int
	ForEachFloor(1, 4, func(floor int) {
		visited = append(visited, floor)
	})
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(visited, want) {
		t.Errorf("Expected %v, got %v", want, visited)
	}

	visited = nil
	ForEachFloor(3, 2, func(floor int) {
		visited = append(visited, floor)
	})
	if len(visited) != 0 {
		t.Errorf("Expected empty range to visit nothing, got %v", visited)
	}
}

func TestInitLogger(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	InitLogger(&buf, slog.LevelInfo, "run", "abc")

	slog.Debug("hidden")
	slog.Info("shown", "floor", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be filtered, got %q", out)
	}
	for _, want := range []string{"msg=shown", "floor=3", "run=abc", "source=utils_test.go:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output %q", want, out)
		}
	}
}
