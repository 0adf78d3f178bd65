package utils

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ForEachFloor calls action for every floor in [bottom, top], lowest first.
func ForEachFloor(bottom, top int, action func(floor int)) {
	for floor := bottom; floor <= top; floor++ {
		action(floor)
	}
}

// InitLogger sets up global logging with compact time format and file:line sources.
func InitLogger(w io.Writer, level slog.Level, attrs ...any) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	logger := slog.New(handler).With(attrs...)
	slog.SetDefault(logger)
}
