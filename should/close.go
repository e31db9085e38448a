// Package should runs cleanup whose failure is worth a log line but not an error.
package should

import (
	"io"
	"log/slog"
)

// Close closes closer and logs a failure at Error on log with msg.
// A nil log falls back to slog.Default().
func Close(log *slog.Logger, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		if log == nil {
			log = slog.Default()
		}

		log.Error(msg, "error", err)
	}
}
