// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import (
	"os"
	"os/user"
	"time"

	"github.com/stacklok/logkit/env"
)

// Identity supplies the who/when stamped onto every file record: the
// acting username, the process id, and the clock. It is injected so the
// core stays testable with fixed fixtures; live OS queries happen only
// in SystemIdentity at the outermost boundary.
type Identity struct {
	User string
	PID  int
	Now  func() time.Time
}

// SystemIdentity returns the live process identity: the current OS user,
// the current process id, and the system clock.
func SystemIdentity() Identity {
	return Identity{
		User: currentUser(&env.OSReader{}),
		PID:  os.Getpid(),
		Now:  time.Now,
	}
}

// currentUser resolves the acting username, falling back to the USER and
// USERNAME environment variables when the user database is unavailable
// (static binaries, minimal containers).
func currentUser(reader env.Reader) string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := reader.Getenv(key); v != "" {
			return v
		}
	}
	return "unknown"
}
