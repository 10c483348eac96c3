package logging

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// currentLevel is the current global log level. It is protected by
// currentLevelLock.
var currentLevel = LevelWarn

// currentLevelLock guards access to currentLevel.
var currentLevelLock sync.RWMutex

// init performs global initialization.
func init() {
	// Allow the log level to be overridden by the environment.
	if name, ok := os.LookupEnv("OSBRIDGE_LOG_LEVEL"); ok {
		if level, valid := NameToLevel(name); valid {
			currentLevel = level
		}
	}
}

// SetLevel sets the global log level.
func SetLevel(level Level) {
	currentLevelLock.Lock()
	defer currentLevelLock.Unlock()
	currentLevel = level
}

// enabled returns whether or not the specified level is currently enabled.
func enabled(level Level) bool {
	currentLevelLock.RLock()
	defer currentLevelLock.RUnlock()
	return level <= currentLevel
}

// levelTint returns the tinting function for the specified level.
func levelTint(level Level) func(format string, a ...interface{}) string {
	switch level {
	case LevelError:
		return color.RedString
	case LevelWarn:
		return color.YellowString
	default:
		return fmt.Sprintf
	}
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any flags set
// for that logger. It is safe for concurrent usage.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
}

// RootLogger is the root logger from which all other loggers derive.
var RootLogger = &Logger{}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
	}
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	// Add a level tint and prefix if necessary.
	line = levelTint(level)("%s", line)
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	log.Output(4, line)
}

// log logs at the specified level with semantics equivalent to fmt.Print.
func (l *Logger) log(level Level, v ...interface{}) {
	if l != nil && enabled(level) {
		l.output(level, fmt.Sprint(v...))
	}
}

// logf logs at the specified level with semantics equivalent to fmt.Printf.
func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l != nil && enabled(level) {
		l.output(level, fmt.Sprintf(format, v...))
	}
}

// Error logs an error with semantics equivalent to fmt.Print.
func (l *Logger) Error(v ...interface{}) {
	l.log(LevelError, v...)
}

// Errorf logs an error with semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// Warn logs a warning with semantics equivalent to fmt.Print.
func (l *Logger) Warn(v ...interface{}) {
	l.log(LevelWarn, v...)
}

// Warnf logs a warning with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.log(LevelInfo, v...)
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Debug logs debugging information with semantics equivalent to fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.log(LevelDebug, v...)
}

// Debugf logs debugging information with semantics equivalent to fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}
