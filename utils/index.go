package utils

import (
	"log/slog"
	"time"
)

// TimeTrack logs how long an operation took. Call it with defer at the top
// of the operation. Sub-5ms operations are skipped to keep the debug log
// readable.
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)

	if elapsed <= 5*time.Millisecond {
		return
	}

	slog.Debug("operation timing", "name", name, "took", elapsed.Round(time.Millisecond).String())
}
