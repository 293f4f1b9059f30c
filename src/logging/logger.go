package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	gologging "github.com/op/go-logging"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

const module = "lazycharts"

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var log = gologging.MustGetLogger(module)

var format = gologging.MustStringFormatter(`%{time:2006/01/02 15:04:05.000000} [%{level}] %{message}`)

func init() { SetOutput(os.Stderr) }

// SetOutput routes all log lines to w, keeping the current level.
func SetOutput(w io.Writer) {
	backend := gologging.NewLogBackend(w, "", 0)
	gologging.SetBackend(gologging.NewBackendFormatter(backend, format))
	applyLevel(getLevel())
}

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	applyLevel(l)
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func applyLevel(l LogLevel) {
	lvl := gologging.INFO
	switch l {
	case LevelDebug:
		lvl = gologging.DEBUG
	case LevelWarn:
		lvl = gologging.WARNING
	case LevelError:
		lvl = gologging.ERROR
	}
	gologging.SetLevel(lvl, module)
}

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return getLevel() }

func logf(l LogLevel, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	// Without args the input is already a message; formatting it again would turn
	// literal % characters into %!x(MISSING).
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	switch l {
	case LevelDebug:
		log.Debug(msg)
	case LevelWarn:
		log.Warning(msg)
	case LevelError:
		log.Error(msg)
	default:
		log.Info(msg)
	}
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
