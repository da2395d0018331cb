// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logwriter implements a dual-sink log writer: each entry is
dispatched to one of five severity-specific host channels and appended as
a canonical single-line record to a configured log file.

# Basic Usage

	channels := zapchan.New(zap.L())
	writer := logwriter.New(settings.NewEnvProvider(nil), channels)

	outcome, err := writer.Log([]string{"Everything worked."}, logwriter.Informational, 0, nil)
	if err != nil {
		// the log destination is fundamentally unwritable
		return err
	}
	_ = outcome

# Batching

Messages that form one logical batch are assembled first and logged once,
so the whole batch shares a single timestamp and identity stamp:

	var lines []string
	for _, item := range items {
		lines = append(lines, describe(item))
	}
	writer.Log(lines, logwriter.Verbose, 4, nil)

# File Record Format

One record per line, fields separated by " : ":

	<indent><timestamp> : <user> : <LEVEL> : <message>
	<indent><timestamp> : [<pid>]      : <user> : <LEVEL> : <message>

Timestamps render as "2006-01-02 15:04:05" local or with a trailing "Z"
in UTC, per the settings provider. The process-id field is fixed-width
regardless of the pid's digit count. Multi-line messages keep embedded
line breaks verbatim within the final field.

# Failure Policy

File-append failures are classified: if the target file exists the entry
is dropped with a warning (transient contention, never retried); if the
target is absent the call fails with ErrUnwritableDestination, because
persistent logging was requested and cannot succeed at that location.
Misconfiguration (logging enabled, no path) warns and skips. Channel
dispatch never aborts the caller, including at Error level.

# Testing

Inject a fixed Identity and a settings fixture to make renderings
byte-for-byte reproducible:

	writer := logwriter.New(
		&settings.Static{Path: path},
		channels,
		logwriter.WithIdentity(logwriter.Identity{User: "svc", PID: 4242, Now: fixedClock}),
	)
*/
package logwriter
