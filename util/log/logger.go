package log

import (
	"errors"
	"io"
	"io/ioutil"
	"log"
	"os"
)

const (
	LevelInfo = iota
	LevelWarn
	LevelError
	LevelDebug

	PrefixError = "\033[31m[ERROR]\033[0m \u001B[34m"
	PrefixWarn  = "\033[33m[WARN]\033[0m \u001B[34m"
	PrefixInfo  = "\033[32m[INFO]\033[0m \u001B[34m"
	PrefixDebug = "\033[36m[DEBUG]\033[0m \u001B[34m"
)

var (
	prefixs      = []string{PrefixInfo, PrefixWarn, PrefixError, PrefixDebug}
	globalLogger = NewLogger(LevelDebug, os.Stdout)
)

// Logger 按级别输出，高于level的日志被丢弃
type Logger struct {
	out     io.Writer
	loggers []*log.Logger
}

func NewLogger(level int, out io.Writer) *Logger {
	if level < 0 {
		panic(errors.New("invalid log level"))
	}
	l := &Logger{out: out, loggers: make([]*log.Logger, LevelDebug+1)}
	l.setLevel(level)
	return l
}

func (l *Logger) setLevel(level int) {
	if level > LevelDebug {
		level = LevelDebug
	}
	i := 0
	for ; i <= level; i++ {
		if i == LevelInfo {
			l.loggers[i] = log.New(l.out, prefixs[i], log.LstdFlags)
		} else {
			l.loggers[i] = log.New(l.out, prefixs[i], log.LstdFlags|log.Lshortfile)
		}
	}
	for ; i <= LevelDebug; i++ {
		l.loggers[i] = log.New(ioutil.Discard, "", 0)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.loggers[LevelInfo].Printf("\033[0m"+format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.loggers[LevelWarn].Printf("\033[0m"+format, args...)
}

func (l *Logger) Error(err error) {
	l.loggers[LevelError].Printf("\033[0m" + err.Error())
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.loggers[LevelError].Printf("\033[0m"+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.loggers[LevelDebug].Printf("\033[0m"+format, args...)
}

// SetLevel rebuilds the per level loggers. Levels above level are discarded.
func (l *Logger) SetLevel(level int) {
	if level < 0 {
		level = LevelInfo
	}
	l.setLevel(level)
}

func (l *Logger) SetOutput(out io.Writer) {
	l.out = out
	for _, logger := range l.loggers {
		if logger.Writer() != ioutil.Discard {
			logger.SetOutput(out)
		}
	}
}

func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

func Error(err error) {
	globalLogger.Error(err)
}

func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

func SetLevel(level int) {
	globalLogger.SetLevel(level)
}

func SetOutput(out io.Writer) {
	globalLogger.SetOutput(out)
}
