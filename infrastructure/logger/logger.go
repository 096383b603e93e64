package logger

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type logEntry struct {
	level Level
	log   []byte
}

// Logger writes tagged, leveled log messages for a single subsystem to
// its Backend.
type Logger struct {
	level        Level
	subsystemTag string
	backend      *Backend
	writeChan    chan logEntry
}

// SetLevel changes the logging level of the logger.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(level))
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

func (l *Logger) write(level Level, s string) {
	if level < l.Level() {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s: %s\n", timestamp, level, l.subsystemTag, s)

	if !l.backend.IsRunning() {
		fmt.Fprint(os.Stderr, line)
		return
	}

	select {
	case l.writeChan <- logEntry{level: level, log: []byte(line)}:
	default:
		// Drop the entry rather than block the caller if the backend
		// is falling behind.
	}
}

// Tracef formats and logs a message at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.write(LevelTrace, fmt.Sprintf(format, args...)) }

// Debugf formats and logs a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof formats and logs a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.write(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf formats and logs a message at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.write(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf formats and logs a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(LevelError, fmt.Sprintf(format, args...)) }

// Criticalf formats and logs a message at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, args...))
}

// Trace logs a message at the trace level.
func (l *Logger) Trace(args ...interface{}) { l.write(LevelTrace, fmt.Sprint(args...)) }

// Debug logs a message at the debug level.
func (l *Logger) Debug(args ...interface{}) { l.write(LevelDebug, fmt.Sprint(args...)) }

// Info logs a message at the info level.
func (l *Logger) Info(args ...interface{}) { l.write(LevelInfo, fmt.Sprint(args...)) }

// Warn logs a message at the warn level.
func (l *Logger) Warn(args ...interface{}) { l.write(LevelWarn, fmt.Sprint(args...)) }

// Error logs a message at the error level.
func (l *Logger) Error(args ...interface{}) { l.write(LevelError, fmt.Sprint(args...)) }

// Critical logs a message at the critical level.
func (l *Logger) Critical(args ...interface{}) { l.write(LevelCritical, fmt.Sprint(args...)) }

// LogClosure defers the computation of a log message's argument until
// the message is formatted. Logger's methods format their arguments
// before the level check in write, so a LogClosure is evaluated even
// for a message that the logger's level then filters out.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

// NewLogClosure returns a LogClosure wrapping c.
func NewLogClosure(c func() string) LogClosure {
	return LogClosure(c)
}

var (
	registryMutex    sync.Mutex
	backendInstance  = NewBackend()
	registeredLoggers = make(map[string]*Logger)
)

// RegisterSubSystem returns the Logger for the given subsystem tag,
// creating it against the package's shared Backend the first time the
// tag is seen. Subsequent calls with the same tag return the same
// Logger.
func RegisterSubSystem(subsystemTag string) *Logger {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if l, exists := registeredLoggers[subsystemTag]; exists {
		return l
	}

	l := backendInstance.Logger(subsystemTag)
	l.SetLevel(LevelInfo)
	registeredLoggers[subsystemTag] = l
	return l
}

// SharedBackend returns the Backend every RegisterSubSystem-created
// Logger writes to, so a caller can attach log files or writers and
// call Run before producing log output.
func SharedBackend() *Backend {
	return backendInstance
}
