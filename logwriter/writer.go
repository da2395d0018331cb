// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stacklok/logkit/settings"
)

// ErrUnwritableDestination reports a file append that failed against a
// destination that does not exist: a bad path, missing permissions, or a
// missing volume. Persistent logging was explicitly requested and can
// never succeed there, so the error is surfaced to the caller instead of
// being downgraded to a warning.
var ErrUnwritableDestination = errors.New("log destination is not writable")

// Outcome reports what happened to the file sink on a single log call.
// Console channel dispatch is not reflected here; it either happened or
// the entry was empty.
type Outcome int

const (
	// OutcomeSkipped means no file write was attempted: the entry was
	// empty, logging is disabled, or no log path is configured.
	OutcomeSkipped Outcome = iota
	// OutcomeLogged means the record was appended to the log file.
	OutcomeLogged
	// OutcomeDropped means the append failed and the record was lost.
	// The accompanying error is nil for contention on an existing file
	// (warned and dropped) and non-nil for an unwritable destination.
	OutcomeDropped
)

const (
	fieldSeparator = " : "

	timestampLocal = "2006-01-02 15:04:05"
	timestampUTC   = "2006-01-02 15:04:05Z"

	// Width of the bracketed process-id field. Holds "[" + pid + "]" for
	// pids up to 10 digits; shorter pids are padded so the column width
	// is constant.
	pidFieldWidth = 12
)

// Writer formats log entries and routes them to the severity channels and
// the configured log file. It is stateless per call: options are read
// from the settings provider on every call, and no entry outlives the
// call that produced it.
type Writer struct {
	settings settings.Provider
	channels Channels
	identity Identity
	fallback *consoleFallback
}

// Option configures a Writer created by New.
type Option func(*Writer)

// WithIdentity overrides the identity context stamped onto file records.
// The default is SystemIdentity().
func WithIdentity(id Identity) Option {
	return func(w *Writer) {
		w.identity = id
	}
}

// WithConsoleFallback sets the console file used for informational output
// when the host channels carry no informational channel.
// The default is os.Stdout.
func WithConsoleFallback(out *os.File) Option {
	return func(w *Writer) {
		w.fallback.out = out
	}
}

// New creates a Writer over the given settings provider and host channels.
func New(provider settings.Provider, channels Channels, opts ...Option) *Writer {
	w := &Writer{
		settings: provider,
		channels: channels,
		identity: SystemIdentity(),
		fallback: newConsoleFallback(os.Stdout),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Log formats one logical entry and emits it: one channel write and at
// most one file append.
//
// The messages are the fully assembled batch for this entry; cause, when
// non-nil, is rendered with Error() and appended as the final line. An
// empty assembly is a no-op. Exactly one timestamp and identity stamp is
// computed for the whole batch. Indents outside [0, MaxIndent] are
// clamped; Entry.Validate rejects them at the caller-facing boundary.
//
// The file append is classified on failure: if the destination exists the
// entry is dropped with a warning on the warning channel (contention with
// another writer is transient and never retried); if the destination does
// not exist the call returns an error wrapping ErrUnwritableDestination.
// The exists-check is a heuristic carried over for compatibility, not a
// general file-error classifier.
func (w *Writer) Log(messages []string, level Level, indent int, cause error) (Outcome, error) {
	lines := make([]string, 0, len(messages)+1)
	lines = append(lines, messages...)
	if cause != nil {
		lines = append(lines, cause.Error())
	}
	if len(lines) == 0 {
		return OutcomeSkipped, nil
	}

	if indent < 0 {
		indent = 0
	} else if indent > MaxIndent {
		indent = MaxIndent
	}
	pad := strings.Repeat(" ", indent)
	body := strings.Join(lines, "\n")

	w.dispatch(level, pad+body)

	if w.settings.DisableLogging() {
		return OutcomeSkipped, nil
	}
	path := w.settings.LogPath()
	if path == "" {
		w.channels.Warning("Logging is enabled but no log path is configured; skipping file write")
		return OutcomeSkipped, nil
	}

	record := w.record(body, level, pad)
	if err := appendLine(path, record); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			// Target exists: most likely another writer holds it. Drop
			// this entry and keep going.
			w.channels.Warning(fmt.Sprintf("Failed to append to log file %s: %v. Dropped record: %s", path, err, record))
			return OutcomeDropped, nil
		}
		return OutcomeDropped, fmt.Errorf("appending to log file %s: %v: %w", path, err, ErrUnwritableDestination)
	}
	return OutcomeLogged, nil
}

// LogEntry validates the entry against the caller-facing contract and
// logs it.
func (w *Writer) LogEntry(e Entry) (Outcome, error) {
	if err := e.Validate(); err != nil {
		return OutcomeSkipped, err
	}
	return w.Log(e.Lines, e.Level, e.Indent, e.Cause)
}

// dispatch routes the console string to exactly one severity channel.
func (w *Writer) dispatch(level Level, msg string) {
	switch level {
	case Error:
		w.channels.Error(msg)
	case Warning:
		w.channels.Warning(msg)
	case Verbose:
		w.channels.Verbose(msg)
	case Debug:
		w.channels.Debug(msg)
	default:
		if ic, ok := w.channels.(InformationalChannel); ok {
			ic.Informational(msg)
			return
		}
		w.fallback.Informational(msg)
	}
}

// record builds the single-line file representation of the entry.
// Embedded newlines in the body are preserved verbatim in the final field.
func (w *Writer) record(body string, level Level, pad string) string {
	now := w.identity.Now()
	layout := timestampLocal
	if w.settings.LogTimeAsUTC() {
		now = now.UTC()
		layout = timestampUTC
	}

	fields := make([]string, 0, 5)
	fields = append(fields, now.Format(layout))
	if w.settings.LogProcessID() {
		fields = append(fields, fmt.Sprintf("%-*s", pidFieldWidth, "["+strconv.Itoa(w.identity.PID)+"]"))
	}
	fields = append(fields, w.identity.User, level.String(), body)
	return pad + strings.Join(fields, fieldSeparator)
}

// appendLine appends one record to the log file, creating it if absent.
// Append-mode writes are atomic at the line level on the host file
// system; no locking is layered on top.
func appendLine(path, record string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(record + "\n")
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
