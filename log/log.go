package log

import (
	"strings"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

// zap appends its own newline, call sites keep the printf habit
func trim(format string) string {
	return strings.TrimSuffix(format, "\n")
}

func Infof(format string, args ...interface{}) {
	sugar.Infof(trim(format), args...)
}

func Warnf(format string, args ...interface{}) {
	sugar.Warnf(trim(format), args...)
}

func Errorf(format string, args ...interface{}) {
	sugar.Errorf(trim(format), args...)
}

func Error(err error) {
	sugar.Error(err)
}

func Panic(v interface{}) {
	sugar.Panic(v)
}
