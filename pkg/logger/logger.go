// Package logger provides channel-scoped logging helpers over log/slog.
// A channel is a subsystem tag (openapi, message, cli) attached to every
// record, so output from concurrent subsystems stays attributable.
package logger

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync/atomic"
)

var (
	backing atomic.Pointer[slog.Logger]
	level   = new(slog.LevelVar)
)

func init() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	backing.Store(slog.New(h))
}

// SetDebug toggles debug-level output.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the backing slog.Logger. The level configured on the
// given logger's handler takes precedence over SetDebug.
func SetLogger(l *slog.Logger) {
	backing.Store(l)
}

func logC(lvl slog.Level, channel, msg string, fields map[string]any) {
	args := make([]any, 0, 2+2*len(fields))
	args = append(args, "channel", channel)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}

	backing.Load().Log(context.Background(), lvl, msg, args...)
}

func DebugC(channel, msg string) { logC(slog.LevelDebug, channel, msg, nil) }
func InfoC(channel, msg string)  { logC(slog.LevelInfo, channel, msg, nil) }
func WarnC(channel, msg string)  { logC(slog.LevelWarn, channel, msg, nil) }
func ErrorC(channel, msg string) { logC(slog.LevelError, channel, msg, nil) }

func DebugCF(channel, msg string, fields map[string]any) {
	logC(slog.LevelDebug, channel, msg, fields)
}

func InfoCF(channel, msg string, fields map[string]any) {
	logC(slog.LevelInfo, channel, msg, fields)
}

func WarnCF(channel, msg string, fields map[string]any) {
	logC(slog.LevelWarn, channel, msg, fields)
}

func ErrorCF(channel, msg string, fields map[string]any) {
	logC(slog.LevelError, channel, msg, fields)
}
