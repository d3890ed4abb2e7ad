package util

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

var slogMeasureID = &atomic.Int64{}

// SLogMeasureFunction logs the entry of a measured operation at debug level and returns a function that logs its exit
// along with the elapsed time. Additional attributes passed to the returned function are appended to the exit entry.
func SLogMeasureFunction(ctx context.Context, functionName string, args ...any) func(args ...any) {
	var (
		then          = time.Now()
		measurementID = slogMeasureID.Add(1)
		allArgs       = append(args, slog.String("fn", functionName), slog.Int64("measurement_id", measurementID))
	)

	slog.DebugContext(ctx, "SLogMeasureFunction", append(allArgs, slog.String("state", "enter"))...)

	return func(args ...any) {
		exitArgs := append(allArgs, slog.Duration("elapsed", time.Since(then)), slog.String("state", "exit"))
		exitArgs = append(exitArgs, args...)

		slog.DebugContext(ctx, "SLogMeasureFunction", exitArgs...)
	}
}
