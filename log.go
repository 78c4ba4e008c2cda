package eonet

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Logger interface {
	SetOutput(output io.Writer)
	WithStack(err interface{})
	Fatalf(format string, args ...interface{})
	Fatal(args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
}

var eolog Logger

func getLogger() Logger {
	if eolog == nil {
		SetLogger(newDefaultLogger())
	}
	return eolog
}

func SetLogger(logger Logger) {
	eolog = logger
}

func SetLoggerOutput(output io.Writer) {
	getLogger().SetOutput(output)
}

type defaultLog struct {
	log *logrus.Entry
}

func newDefaultLogger() *defaultLog {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &defaultLog{log: l.WithField("module", "eonet")}
}

func (l *defaultLog) SetOutput(output io.Writer) {
	l.log.Logger.SetOutput(output)
}

// WithStack logs err with the stack of the caller and exits.
func (l *defaultLog) WithStack(err interface{}) {
	er := errors.Errorf("%v", err)
	l.log.Fatalf("\n%+v", er)
}

func (l *defaultLog) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}

func (l *defaultLog) Fatal(args ...interface{}) {
	l.log.Fatal(args...)
}

func (l *defaultLog) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *defaultLog) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *defaultLog) Info(args ...interface{}) {
	l.log.Info(args...)
}

func (l *defaultLog) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}
