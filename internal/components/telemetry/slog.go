package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// SlogAPI implements API on top of log/slog. A zero SlogAPI logs to the
// default logger.
type SlogAPI struct {
	Logger *slog.Logger
}

func (s SlogAPI) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// attrs turns params into key/value pairs, errors are logged under "err"
// and everything else by position.
func attrs(params []any) []any {
	out := make([]any, 0, len(params))
	for i, p := range params {
		if err, ok := p.(error); ok {
			out = append(out, slog.Any("err", err))
			continue
		}
		out = append(out, slog.Any(fmt.Sprintf("p%d", i), p))
	}
	return out
}

func (s SlogAPI) ReportBroken(id string, params ...any) {
	s.logger().Error("broken", append([]any{slog.String("id", id)}, attrs(params)...)...)
}

func (s SlogAPI) ReportWarning(id string, params ...any) {
	s.logger().Warn("warning", append([]any{slog.String("id", id)}, attrs(params)...)...)
}

func (s SlogAPI) ReportDebug(msg string, params ...any) {
	s.logger().Debug(msg, attrs(params)...)
}

func (s SlogAPI) ReportCount(id string, count int64) {
	s.logger().Info("count", slog.String("id", id), slog.Int64("n", count))
}

// InitSlog makes a colored stderr handler the default logger, debug
// records are only shown when verbose.
func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
