package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

type LeveledLogger struct {
	verbose bool
	color   bool
	mu      sync.RWMutex
	loggers map[LogLevel]*log.Logger
	sink    *os.File
}

var globalLogger *LeveledLogger

func init() {
	globalLogger = &LeveledLogger{
		color:   true,
		loggers: make(map[LogLevel]*log.Logger),
	}

	for level := DEBUG; level <= FATAL; level++ {
		globalLogger.loggers[level] = log.New(os.Stdout, "", 0)
	}
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

func SetWriter(level LogLevel, writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.loggers[level] = log.New(writer, "", 0)
}

// SetErrorWriter routes ERROR and FATAL to stderr so copy failures land on
// the error stream while normal progress stays on stdout.
func SetErrorWriter() {
	SetWriter(ERROR, os.Stderr)
	SetWriter(FATAL, os.Stderr)
}

// SetLogFile tees every level to the given file in addition to its stream.
// Colors are disabled once a file sink is attached so the file stays
// grep-able.
func SetLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	globalLogger.sink = f
	globalLogger.color = false
	for level := DEBUG; level <= FATAL; level++ {
		out := io.Writer(os.Stdout)
		if level >= ERROR {
			out = os.Stderr
		}
		globalLogger.loggers[level] = log.New(io.MultiWriter(out, f), "", 0)
	}
	return nil
}

func CloseLogFile() error {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	if globalLogger.sink == nil {
		return nil
	}
	err := globalLogger.sink.Close()
	globalLogger.sink = nil
	return err
}

func (ll *LeveledLogger) getColor(level LogLevel) string {
	switch level {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorWhite
	}
}

func (ll *LeveledLogger) formatMessage(level LogLevel, message string) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")

	if !ll.color {
		return fmt.Sprintf("[%s] %-5s %s", timestamp, level.String(), message)
	}

	return fmt.Sprintf(
		"%s[%s]%s %s%-5s%s %s",
		ColorGray, timestamp, ColorReset,
		ll.getColor(level), level.String(), ColorReset,
		message,
	)
}

func (ll *LeveledLogger) log(level LogLevel, format string, args ...interface{}) {
	ll.mu.RLock()
	if level == DEBUG && !ll.verbose {
		ll.mu.RUnlock()
		return
	}
	out := ll.loggers[level]
	msg := ll.formatMessage(level, fmt.Sprintf(format, args...))
	ll.mu.RUnlock()

	out.Println(msg)

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}
