package logging

import (
	"log"
	"os"
	"sync/atomic"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "SIMPLETIMER_DEBUG"

var forced atomic.Bool

// SetDebug forces debug output on regardless of the environment.
func SetDebug(enabled bool) {
	forced.Store(enabled)
}

// DebugEnabled returns true if debug mode is enabled via SetDebug or SIMPLETIMER_DEBUG.
func DebugEnabled() bool {
	return forced.Load() || os.Getenv(DebugEnv) != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf("debug: "+format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		log.Println(append([]interface{}{"debug:"}, args...)...)
	}
}
