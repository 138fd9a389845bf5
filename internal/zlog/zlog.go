// Package zlog provides the single stderr diagnostic logger used
// across zerv. Nothing here ever touches stdout — stdout carries the
// version string only (§5).
package zlog

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.SugaredLogger
)

// L returns the process-wide sugared logger, building it on first use.
func L() *zap.SugaredLogger {
	once.Do(func() {
		logger = newLogger(false)
	})
	return logger
}

// SetVerbose rebuilds the logger, at debug level when verbose is true.
// Called once from the root command's Before hook before any other
// package logs; a later L() call keeps the logger built here.
func SetVerbose(verbose bool) {
	once.Do(func() {})
	logger = newLogger(verbose)
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	encoder := zapcore.NewConsoleEncoder(cfg)

	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core).Sugar()
}

// Warn logs an advisory that does not abort the pipeline (shallow
// clone, a tagged commit contained in several branches, etc).
func Warn(msg string, kv ...interface{}) {
	L().Warnw(msg, kv...)
}

// Debug logs low-level tracing, only visible with --verbose.
func Debug(msg string, kv ...interface{}) {
	L().Debugw(msg, kv...)
}
