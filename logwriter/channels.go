// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=channels.go -destination=mocks/mock_channels.go -package=mocks Channels

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Channels is the set of severity-specific output channels a host
// environment exposes for diagnostic text. The writer selects exactly one
// channel per entry; rendering beyond the prepared console string is the
// host's concern.
//
// Error-level dispatch is a non-terminating report: implementations must
// not panic or abort the calling operation.
type Channels interface {
	Error(msg string)
	Warning(msg string)
	Verbose(msg string)
	Debug(msg string)
}

// InformationalChannel is implemented by hosts that expose a dedicated
// informational channel. When the Channels supplied to New does not
// implement it, informational output degrades to an interactive-only
// console write that is silently discarded in non-interactive contexts.
type InformationalChannel interface {
	Informational(msg string)
}

// consoleFallback writes informational text to a console file only when
// that file is a terminal.
type consoleFallback struct {
	out         *os.File
	interactive func(fd int) bool
}

func newConsoleFallback(out *os.File) *consoleFallback {
	return &consoleFallback{out: out, interactive: term.IsTerminal}
}

func (c *consoleFallback) Informational(msg string) {
	if c.out == nil || !c.interactive(int(c.out.Fd())) {
		return
	}
	fmt.Fprintln(c.out, msg)
}
