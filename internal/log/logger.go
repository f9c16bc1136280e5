package log

import (
	"context"
	"io"
	"os"

	"flashd/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so fields can be chained
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput sends log output to w
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.entry.Logger.SetOutput(w)
	}
}

// WithJSON switches to the JSON formatter
func WithJSON() Option {
	return func(l *Logger) {
		l.entry.Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile mirrors log output to a file in addition to stderr
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.entry.WithError(err).Warn("could not open log file")
			return
		}
		l.file = f
		l.entry.Logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	base.SetLevel(logrus.TraceLevel)

	l := &Logger{entry: logrus.NewEntry(base)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger, closing the log file of the one it
// replaces.
func Configure(opts ...Option) {
	old := logger
	logger = NewLogger(opts...)
	_ = old.Close()
}

// Close releases the log file opened by WithFile, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Close closes the package logger's file
func Close() error {
	return logger.Close()
}

func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), file: l.file}
}

// WithContext attaches ctx to the underlying entry
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file}
}

func (l *Logger) Info(args ...interface{})  { l.entry.Info(args...) }
func (l *Logger) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l *Logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug only logs when debug output is enabled
func (l *Logger) Debug(args ...interface{}) {
	if isDebug {
		l.entry.Debug(args...)
	}
}

// Debugf only logs when debug output is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message when debug output is enabled
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message
func Warn(args ...interface{}) {
	logger.Warn(args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// LogWithFields returns the package logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and whatever context its type carries
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var deckErr *errors.DeckError
	var imgErr *errors.ImageError
	var cfgErr *errors.ConfigError
	switch {
	case errors.As(err, &deckErr):
		if deckErr.Card() >= 0 {
			fields = append(fields, F("card", deckErr.Card()))
		}
		if deckErr.Source() != "" {
			fields = append(fields, F("source", deckErr.Source()))
		}
	case errors.As(err, &imgErr):
		fields = append(fields, F("path", imgErr.Path()))
	case errors.As(err, &cfgErr):
		fields = append(fields, F("param", cfgErr.Param()))
	}

	return logger.With(fields...)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
