// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"strconv"

	"github.com/stacklok/logkit/env"
)

// Environment variable names read by EnvProvider.
const (
	// EnvLogPath sets the destination file for file-sink writes.
	EnvLogPath = "LOGKIT_LOG_PATH"
	// EnvDisableLogging suppresses file writes when set to a true value.
	EnvDisableLogging = "LOGKIT_DISABLE_LOGGING"
	// EnvLogTimeAsUTC renders file-sink timestamps in UTC when true.
	EnvLogTimeAsUTC = "LOGKIT_LOG_TIME_AS_UTC"
	// EnvLogProcessID includes the process-id field when true.
	EnvLogProcessID = "LOGKIT_LOG_PROCESS_ID"
)

// EnvProvider reads options from environment variables through an
// injected env.Reader, so every log call observes the current process
// environment.
type EnvProvider struct {
	reader env.Reader
}

// NewEnvProvider creates a Provider over the given environment reader.
// A nil reader defaults to the real process environment.
func NewEnvProvider(reader env.Reader) *EnvProvider {
	if reader == nil {
		reader = &env.OSReader{}
	}
	return &EnvProvider{reader: reader}
}

// LogPath returns the value of LOGKIT_LOG_PATH.
func (p *EnvProvider) LogPath() string {
	return p.reader.Getenv(EnvLogPath)
}

// DisableLogging reports whether LOGKIT_DISABLE_LOGGING parses as true.
func (p *EnvProvider) DisableLogging() bool {
	return p.boolOption(EnvDisableLogging)
}

// LogTimeAsUTC reports whether LOGKIT_LOG_TIME_AS_UTC parses as true.
func (p *EnvProvider) LogTimeAsUTC() bool {
	return p.boolOption(EnvLogTimeAsUTC)
}

// LogProcessID reports whether LOGKIT_LOG_PROCESS_ID parses as true.
func (p *EnvProvider) LogProcessID() bool {
	return p.boolOption(EnvLogProcessID)
}

func (p *EnvProvider) boolOption(key string) bool {
	value, err := strconv.ParseBool(p.reader.Getenv(key))
	if err != nil {
		// at this point if the error is not nil, the env var wasn't set,
		// or holds something unparsable; either way the option is off.
		return false
	}
	return value
}
