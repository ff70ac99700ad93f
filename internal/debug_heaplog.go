//go:build debugheaplog

package internal

import (
	"log/slog"
)

const HeapAllocDebugging = true

func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return true
}

// LogAttrs prints with the runtime's print builtins so that logging itself
// does not show up in the allocation report printed by [LogAllocs].
func LogAttrs(_ *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	LogAllocs(msg)
	if level == LevelTrace {
		print("TRACE ")
	} else {
		print(level.String(), " ")
	}
	print(msg)
	for _, a := range attrs {
		switch a.Value.Kind() {
		case slog.KindString:
			print(" ", a.Key, "=", a.Value.String())
		case slog.KindInt64:
			print(" ", a.Key, "=", a.Value.Int64())
		case slog.KindUint64:
			print(" ", a.Key, "=", a.Value.Uint64())
		case slog.KindBool:
			print(" ", a.Key, "=", a.Value.Bool())
		case slog.KindFloat64:
			print(" ", a.Key, "=", a.Value.Float64())
		}
	}
	println()
}
