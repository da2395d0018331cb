// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package settings exposes the configuration options consumed by the logkit
writer: the log file path, whether file logging is disabled, whether
timestamps render in UTC, and whether the process id is recorded.

The writer reads these options through the Provider interface on every log
call, so a Provider implementation decides the freshness semantics:

  - EnvProvider reads the LOGKIT_* environment variables on each call.
  - FileProvider snapshots a YAML settings file; call Reload to refresh.
  - Static holds fixed values, typically for tests.

# Basic Usage

	provider := settings.NewEnvProvider(nil)
	writer := logwriter.New(provider, channels)

# Settings File

FileProvider accepts a YAML document with four keys; unknown keys are
rejected:

	log_path: /var/log/app/app.log
	disable_logging: false
	log_time_as_utc: true
	log_process_id: true

# Testing

A generated mock for Provider is available in the mocks sub-package for
asserting that options are read fresh on every call.
*/
package settings
