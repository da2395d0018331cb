// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package zapchan provides severity channel sets backed by zap and logr,
// the default host side of the logwriter dual-sink contract.
package zapchan

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Set routes each logwriter severity to the matching zap level. It
// implements both logwriter.Channels and logwriter.InformationalChannel,
// so hosts using it never degrade to the interactive console fallback.
type Set struct {
	s *zap.SugaredLogger
}

// New creates a channel set over the given zap logger.
func New(l *zap.Logger) *Set {
	return &Set{s: l.Sugar()}
}

// Error emits a non-terminating error report.
func (c *Set) Error(msg string) {
	c.s.Error(msg)
}

// Warning emits a warning.
func (c *Set) Warning(msg string) {
	c.s.Warn(msg)
}

// Informational emits an informational message.
func (c *Set) Informational(msg string) {
	c.s.Info(msg)
}

// Verbose emits a verbose progress message at zap's debug level; zap has
// no level below debug to distinguish the two.
func (c *Set) Verbose(msg string) {
	c.s.Debug(msg)
}

// Debug emits a diagnostic message.
func (c *Set) Debug(msg string) {
	c.s.Debug(msg)
}

// Console builds a zap logger configured for interactive console use:
// colored capital levels, kitchen timestamps, stderr output, and no
// stack traces or caller annotations.
func Console() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.DisableCaller = true
	return config.Build()
}

// Production builds a zap logger with the structured production
// configuration, writing JSON to stdout.
func Production() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}

// NewLogr returns a logr.Logger backed by the given zap logger, for
// hosts that standardize on logr.
func NewLogr(l *zap.Logger) logr.Logger {
	return zapr.NewLogger(l)
}

// LogrSet routes severities through a logr.Logger. Verbose maps to V(1)
// and Debug to V(2); warnings carry a severity key because logr has no
// warning level.
type LogrSet struct {
	l logr.Logger
}

// FromLogr creates a channel set over the given logr.Logger.
func FromLogr(l logr.Logger) *LogrSet {
	return &LogrSet{l: l}
}

// Error emits a non-terminating error report.
func (c *LogrSet) Error(msg string) {
	c.l.Error(nil, msg)
}

// Warning emits a warning.
func (c *LogrSet) Warning(msg string) {
	c.l.Info(msg, "severity", "warning")
}

// Informational emits an informational message.
func (c *LogrSet) Informational(msg string) {
	c.l.Info(msg)
}

// Verbose emits a verbose progress message.
func (c *LogrSet) Verbose(msg string) {
	c.l.V(1).Info(msg)
}

// Debug emits a diagnostic message.
func (c *LogrSet) Debug(msg string) {
	c.l.V(2).Info(msg)
}
