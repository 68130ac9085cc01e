// Package log is a small leveled logger on top of the standard library.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

var Logger = log.New(os.Stdout, "[cubes] ", log.LstdFlags|log.Lshortfile)

var debugEnabled atomic.Bool

// callerDepth skips output and the exported wrapper so Lshortfile reports
// the caller's file and line
const callerDepth = 3

// SetOutput redirects all log output
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetDebug enables or disables Debug messages
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

func output(level, msg string, args ...interface{}) {
	_ = Logger.Output(callerDepth, level+fmt.Sprintf(msg, args...))
}

func Debug(msg string, args ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	output("[DEBUG] ", msg, args...)
}

func Info(msg string, args ...interface{}) {
	output("[INFO] ", msg, args...)
}

func Error(msg string, args ...interface{}) {
	output("[ERROR] ", msg, args...)
}
