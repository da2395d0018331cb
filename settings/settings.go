// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package settings

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=settings.go -destination=mocks/mock_provider.go -package=mocks Provider

// Provider exposes the logging options consumed by the logwriter package.
// Implementations must be cheap to call: the writer reads every option
// fresh on each log call and never caches the results.
type Provider interface {
	// LogPath returns the destination file for file-sink writes.
	// An empty path with logging enabled skips file writes with a warning.
	LogPath() string

	// DisableLogging reports whether file writes are suppressed.
	// Console channel dispatch is unaffected by this option.
	DisableLogging() bool

	// LogTimeAsUTC selects UTC timestamp rendering in the file sink.
	LogTimeAsUTC() bool

	// LogProcessID includes a fixed-width bracketed process-id field
	// in the file sink.
	LogProcessID() bool
}

// Static is a fixed-value Provider for tests and for hosts that resolve
// their options once at startup.
type Static struct {
	Path      string
	Disabled  bool
	TimeAsUTC bool
	ProcessID bool
}

// LogPath returns the configured destination file.
func (s *Static) LogPath() string { return s.Path }

// DisableLogging reports whether file writes are suppressed.
func (s *Static) DisableLogging() bool { return s.Disabled }

// LogTimeAsUTC reports whether timestamps render in UTC.
func (s *Static) LogTimeAsUTC() bool { return s.TimeAsUTC }

// LogProcessID reports whether the process-id field is included.
func (s *Static) LogProcessID() bool { return s.ProcessID }
