// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import "strings"

// Level represents the severity of a log entry. Each level maps to
// exactly one host output channel and to the upper-cased severity field
// of the file record.
type Level int

const (
	// Informational is the default level for normal operational messages.
	Informational Level = iota
	// Error is for failures reported to the caller without aborting it.
	Error
	// Warning is for unexpected conditions that don't prevent operation.
	Warning
	// Verbose is for detailed progress messages, including invocation logs.
	Verbose
	// Debug is for diagnostic information.
	Debug
)

// String returns the uppercase name of the level, as written to the file
// sink's severity field.
func (l Level) String() string {
	switch l {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Informational:
		return "INFORMATIONAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive).
// Unrecognized names parse as Informational.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "error", "err":
		return Error
	case "warning", "warn":
		return Warning
	case "verbose":
		return Verbose
	case "debug":
		return Debug
	default:
		return Informational
	}
}
