// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import "fmt"

// MaxIndent is the largest accepted indent, in leading spaces.
const MaxIndent = 30

// Entry is one logical log entry: an ordered batch of message lines, an
// optional cause appended as the final line, a severity, and an indent
// applied to both the console and file renderings.
//
// Callers that batch messages assemble the full Lines slice first and
// log once, so the whole batch shares a single timestamp and identity
// stamp in the file record.
type Entry struct {
	Lines  []string
	Cause  error
	Level  Level
	Indent int
}

// Validate checks the caller-facing contract: indent must be in
// [0, MaxIndent]. Writer.Log itself clamps out-of-range indents rather
// than rejecting them; validation belongs at the boundary.
func (e Entry) Validate() error {
	if e.Indent < 0 || e.Indent > MaxIndent {
		return fmt.Errorf("indent %d out of range [0, %d]", e.Indent, MaxIndent)
	}
	return nil
}
