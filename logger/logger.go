// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger configures a process-wide zap logger whose behavior is
// driven by the environment store: UNSTRUCTURED_LOGS selects
// human-readable output, DEBUG raises the level, and the development
// environment implies debug logging.
package logger

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/safarihq/envcore/env"
)

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnf logs a message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorf logs a message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger backed by the singleton zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// Initialize configures the singleton logger from the process
// environment.
func Initialize() {
	InitializeWithEnv(env.New())
}

// InitializeWithEnv configures the singleton logger from the given Env,
// which allows injecting a hermetic store in tests.
//
// When UNSTRUCTURED_LOGS is anything but "false" (including unset) the
// logger writes colored, human-readable lines to stderr. Otherwise it
// writes production JSON to stdout. DEBUG=true or a "development"
// environment lowers the level to debug.
func InitializeWithEnv(e *env.Env) {
	zap.ReplaceGlobals(zap.Must(buildConfig(e).Build()))
}

func buildConfig(e *env.Env) zap.Config {
	var config zap.Config
	if e.GetBool("UNSTRUCTURED_LOGS", true) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if e.GetBool("DEBUG", false) || e.IsDevelopment() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config
}
