package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	logger *slog.Logger
	output io.Writer = os.Stderr
)

func Init(verbose bool, json bool) {
	InitWriter(os.Stderr, verbose, json)
}

// InitWriter is Init with an explicit destination for log records and the
// summary block.
func InitWriter(w io.Writer, verbose bool, json bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	output = w
	if json {
		logger = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
		)
	} else {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			}))
	}
	slog.SetDefault(logger)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

type summaryStatement struct {
	level slog.Level
	msg   string
	args  []any
}

var (
	summaryMutex sync.Mutex
	summary      = []summaryStatement{}
)

// AddSummaryError queues a record that Close prints after the run.
func AddSummaryError(msg string, args ...any) {
	summaryMutex.Lock()
	defer summaryMutex.Unlock()
	summary = append(summary, summaryStatement{slog.LevelError, msg, args})
}

func SummaryCount() int {
	summaryMutex.Lock()
	defer summaryMutex.Unlock()
	return len(summary)
}

// Close prints the queued summary records between separator lines and
// clears them. Nothing is printed when no records were queued.
func Close() {
	summaryMutex.Lock()
	defer summaryMutex.Unlock()
	if len(summary) == 0 {
		return
	}
	line := []byte("------------\n")

	output.Write(line)
	for _, i := range summary {
		logger.Log(context.TODO(), i.level, i.msg, i.args...)
	}
	output.Write(line)
	summary = []summaryStatement{}
}

func init() {
	Init(false, false)
}
