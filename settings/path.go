// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultLogPath returns the conventional log file location for hosts
// that enable file logging without configuring a path explicitly:
// $XDG_STATE_HOME/logkit/logkit.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "logkit", "logkit.log")
}
