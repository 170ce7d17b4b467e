// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

// SecurityLogger records security relevant events, primarily authorization
// denials, on a dedicated named logger so they can be filtered downstream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthorizationDenied(userID, tenantID, action, reason string) {
	s.l.Warn(
		"authorization denied",
		zap.String("user_id", userID),
		zap.String("tenant_id", tenantID),
		zap.String("action", action),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown")
}

func NewLogger(level string) *Logger {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.Must(cfg.Build())

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}
