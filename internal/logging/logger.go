package logging

import (
	"log/slog"
	"os"
)

// Setup points the process-wide slog default at a JSON stdout handler.
// main swaps in a MultiHandler later, once the database sink is available.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
