// Package logger prints leveled, colored log lines to the console.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var (
	level atomic.Int32

	grayColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	methodColor  = color.New(color.FgMagenta)
)

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(l Level) {
	level.Store(int32(l))
}

func enabled(l Level) bool {
	return Level(level.Load()) <= l
}

func timestamp() string {
	return grayColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

func Debug(message string, args ...interface{}) {
	if !enabled(LevelDebug) {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", timestamp(), grayColor.Sprintf("DEBUG: "+message, args...))
}

func Info(message string, args ...interface{}) {
	if !enabled(LevelInfo) {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", timestamp(), infoColor.Sprintf(message, args...))
}

func Success(message string, args ...interface{}) {
	if !enabled(LevelInfo) {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", timestamp(), successColor.Sprintf("✓ "+message, args...))
}

func Warning(message string, args ...interface{}) {
	if !enabled(LevelWarning) {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", timestamp(), warningColor.Sprintf("⚠ "+message, args...))
}

func Error(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", timestamp(), errorColor.Sprintf("✗ "+message, args...))
}

// Request logs one HTTP request with its status and duration.
func Request(method, path string, statusCode int, duration time.Duration) {
	if !enabled(LevelInfo) {
		return
	}

	var status *color.Color
	switch {
	case statusCode >= 500:
		status = errorColor
	case statusCode >= 400:
		status = warningColor
	case statusCode >= 300:
		status = infoColor
	default:
		status = successColor
	}

	var elapsed string
	switch {
	case duration < time.Millisecond:
		elapsed = fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		elapsed = fmt.Sprintf("%dms", duration.Milliseconds())
	default:
		elapsed = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	fmt.Fprintf(os.Stdout, "%s %s %-50s %s %s\n",
		timestamp(),
		methodColor.Sprintf("%-6s", method),
		path,
		status.Sprintf("[%d]", statusCode),
		grayColor.Sprintf("(%s)", elapsed),
	)
}
