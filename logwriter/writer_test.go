// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/logkit/logwriter/mocks"
	"github.com/stacklok/logkit/settings"
	settingsmocks "github.com/stacklok/logkit/settings/mocks"
)

// recordingChannels implements Channels and InformationalChannel,
// capturing every dispatched message per channel.
type recordingChannels struct {
	errors   []string
	warnings []string
	verbose  []string
	debug    []string
	info     []string
}

func (c *recordingChannels) Error(msg string)         { c.errors = append(c.errors, msg) }
func (c *recordingChannels) Warning(msg string)       { c.warnings = append(c.warnings, msg) }
func (c *recordingChannels) Verbose(msg string)       { c.verbose = append(c.verbose, msg) }
func (c *recordingChannels) Debug(msg string)         { c.debug = append(c.debug, msg) }
func (c *recordingChannels) Informational(msg string) { c.info = append(c.info, msg) }

func (c *recordingChannels) total() int {
	return len(c.errors) + len(c.warnings) + len(c.verbose) + len(c.debug) + len(c.info)
}

// fixedIdentity returns a deterministic identity with the clock pinned to
// 2026-03-01 10:30:00 UTC.
func fixedIdentity(pid int) Identity {
	return Identity{
		User: "svc",
		PID:  pid,
		Now:  func() time.Time { return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC) },
	}
}

func tempLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.log")
}

func readRecords(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestLog_InformationalScenario(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(4242)))

	outcome, err := w.Log([]string{"Everything worked."}, Informational, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLogged, outcome)

	records := readRecords(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-01 10:30:00Z : svc : INFORMATIONAL : Everything worked.", records[0])

	assert.Equal(t, 1, ch.total(), "exactly one channel write per call")
	assert.Equal(t, []string{"Everything worked."}, ch.info)
}

func TestLog_EmptyEntryShortCircuits(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: an empty entry must return before reading any
	// option or touching any channel.
	provider := settingsmocks.NewMockProvider(ctrl)
	channels := mocks.NewMockChannels(ctrl)

	w := New(provider, channels, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log(nil, Informational, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestLog_CauseAppendedAsFinalLine(t *testing.T) {
	t.Parallel()

	t.Run("cause only", func(t *testing.T) {
		t.Parallel()
		path := tempLogPath(t)
		ch := &recordingChannels{}
		w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

		outcome, err := w.Log(nil, Error, 0, errors.New("boom"))
		require.NoError(t, err, "Error-level dispatch must not abort the caller")
		assert.Equal(t, OutcomeLogged, outcome)

		records := readRecords(t, path)
		require.Len(t, records, 1)
		assert.Equal(t, "2026-03-01 10:30:00Z : svc : ERROR : boom", records[0])
		assert.Equal(t, []string{"boom"}, ch.errors)
	})

	t.Run("cause after messages", func(t *testing.T) {
		t.Parallel()
		path := tempLogPath(t)
		ch := &recordingChannels{}
		w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

		_, err := w.Log([]string{"operation failed"}, Error, 0, errors.New("boom"))
		require.NoError(t, err)

		assert.Equal(t, []string{"operation failed\nboom"}, ch.errors)
		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		assert.Equal(t, "2026-03-01 10:30:00Z : svc : ERROR : operation failed\nboom\n", string(data))
	})
}

func TestLog_BatchSharesOneStamp(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}

	// The clock moves on every query; a batched entry must query it once.
	calls := 0
	id := fixedIdentity(1)
	id.Now = func() time.Time {
		calls++
		return time.Date(2026, 3, 1, 10, 30, calls-1, 0, time.UTC)
	}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(id))

	outcome, err := w.Log([]string{"first", "second", "third"}, Verbose, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLogged, outcome)
	assert.Equal(t, 1, calls, "one timestamp per batch, not per message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01 10:30:00Z : svc : VERBOSE : first\nsecond\nthird\n", string(data))
	assert.Equal(t, []string{"first\nsecond\nthird"}, ch.verbose)
}

func TestLog_FormattingIsIdempotent(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true, ProcessID: true}, ch, WithIdentity(fixedIdentity(77)))

	for i := 0; i < 2; i++ {
		_, err := w.Log([]string{"same entry"}, Debug, 2, nil)
		require.NoError(t, err)
	}

	records := readRecords(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, records[0], records[1], "fixed clock and identity must render byte-identical records")
}

func TestLog_PidFieldWidthIsConstant(t *testing.T) {
	t.Parallel()

	pids := []int{1, 42, 987, 6553, 65535, 999999, 7777777, 88888888, 999999999, 1234567890}

	var widths []int
	for _, pid := range pids {
		path := tempLogPath(t)
		ch := &recordingChannels{}
		w := New(&settings.Static{Path: path, TimeAsUTC: true, ProcessID: true}, ch, WithIdentity(fixedIdentity(pid)))

		_, err := w.Log([]string{"x"}, Informational, 0, nil)
		require.NoError(t, err)

		records := readRecords(t, path)
		require.Len(t, records, 1)
		assert.Contains(t, records[0], fmt.Sprintf("[%d]", pid))
		widths = append(widths, len(records[0]))
	}

	for i := 1; i < len(widths); i++ {
		assert.Equal(t, widths[0], widths[i], "pid %d produced a different record width", pids[i])
	}
}

func TestLog_TimestampRendering(t *testing.T) {
	t.Parallel()

	// A zone well away from UTC makes conversion visible.
	zone := time.FixedZone("UTC+5", 5*60*60)
	id := Identity{
		User: "svc",
		PID:  1,
		Now:  func() time.Time { return time.Date(2026, 3, 1, 15, 30, 0, 0, zone) },
	}

	t.Run("UTC converts and appends Z", func(t *testing.T) {
		t.Parallel()
		path := tempLogPath(t)
		w := New(&settings.Static{Path: path, TimeAsUTC: true}, &recordingChannels{}, WithIdentity(id))

		_, err := w.Log([]string{"x"}, Informational, 0, nil)
		require.NoError(t, err)

		records := readRecords(t, path)
		assert.True(t, strings.HasPrefix(records[0], "2026-03-01 10:30:00Z : "), "got %q", records[0])
	})

	t.Run("local keeps wall time without Z", func(t *testing.T) {
		t.Parallel()
		path := tempLogPath(t)
		w := New(&settings.Static{Path: path}, &recordingChannels{}, WithIdentity(id))

		_, err := w.Log([]string{"x"}, Informational, 0, nil)
		require.NoError(t, err)

		records := readRecords(t, path)
		assert.True(t, strings.HasPrefix(records[0], "2026-03-01 15:30:00 : "), "got %q", records[0])
	})
}

func TestLog_IndentAppliesToBothSinks(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

	_, err := w.Log([]string{"indented"}, Informational, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"    indented"}, ch.info)
	records := readRecords(t, path)
	assert.Equal(t, "    2026-03-01 10:30:00Z : svc : INFORMATIONAL : indented", records[0])
}

func TestLog_IndentOutOfRangeIsClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		indent int
		want   int
	}{
		{"negative clamps to zero", -3, 0},
		{"above maximum clamps to maximum", MaxIndent + 5, MaxIndent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ch := &recordingChannels{}
			w := New(&settings.Static{Disabled: true}, ch, WithIdentity(fixedIdentity(1)))

			_, err := w.Log([]string{"x"}, Informational, tt.indent, nil)
			require.NoError(t, err)

			require.Len(t, ch.info, 1)
			assert.Equal(t, strings.Repeat(" ", tt.want)+"x", ch.info[0])
		})
	}
}

func TestLog_DisabledLoggingSkipsFileWrite(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, Disabled: true}, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log([]string{"x"}, Informational, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)

	assert.Equal(t, 1, ch.total(), "console dispatch is unaffected by disabled file logging")
	assert.NoFileExists(t, path)
}

func TestLog_MissingPathWarnsAndSkips(t *testing.T) {
	t.Parallel()

	ch := &recordingChannels{}
	w := New(&settings.Static{}, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log([]string{"x"}, Verbose, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)

	assert.Equal(t, []string{"x"}, ch.verbose, "verbose dispatch still occurs")
	require.Len(t, ch.warnings, 1, "exactly one warning about the missing path")
	assert.Contains(t, ch.warnings[0], "no log path")
}

func TestLog_UnwritableDestinationIsFatal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no-such-dir", "test.log")
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log([]string{"x"}, Informational, 0, nil)
	assert.Equal(t, OutcomeDropped, outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnwritableDestination)
	assert.Empty(t, ch.warnings, "fatal failures propagate instead of being downgraded to warnings")
}

func TestLog_ContentionWarnsAndDrops(t *testing.T) {
	t.Parallel()

	// A directory at the log path makes the append fail while the target
	// still exists, which is classified as transient contention.
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.Mkdir(path, 0o755))

	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log([]string{"dropped message"}, Informational, 0, nil)
	require.NoError(t, err, "contention is non-fatal")
	assert.Equal(t, OutcomeDropped, outcome)

	require.Len(t, ch.warnings, 1)
	assert.Contains(t, ch.warnings[0], path)
	assert.Contains(t, ch.warnings[0], "dropped message", "the warning carries the dropped record")
}

func TestLog_OptionsReadFreshOnEveryCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := tempLogPath(t)
	provider := settingsmocks.NewMockProvider(ctrl)
	gomock.InOrder(
		// First call: logging enabled, record written.
		provider.EXPECT().DisableLogging().Return(false),
		provider.EXPECT().LogPath().Return(path),
		provider.EXPECT().LogTimeAsUTC().Return(true),
		provider.EXPECT().LogProcessID().Return(false),
		// Second call observes the flipped option with no writer rebuild.
		provider.EXPECT().DisableLogging().Return(true),
	)

	ch := &recordingChannels{}
	w := New(provider, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.Log([]string{"x"}, Debug, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLogged, outcome)

	outcome, err = w.Log([]string{"x"}, Debug, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)

	records := readRecords(t, path)
	assert.Len(t, records, 1)
}

func TestLogEntry_RejectsInvalidIndent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a rejected entry performs no dispatch and no I/O.
	provider := settingsmocks.NewMockProvider(ctrl)
	channels := mocks.NewMockChannels(ctrl)
	w := New(provider, channels, WithIdentity(fixedIdentity(1)))

	for _, indent := range []int{-1, MaxIndent + 1} {
		outcome, err := w.LogEntry(Entry{Lines: []string{"x"}, Indent: indent})
		assert.Error(t, err)
		assert.Equal(t, OutcomeSkipped, outcome)
	}
}

func TestLogEntry_ValidEntryLogs(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	ch := &recordingChannels{}
	w := New(&settings.Static{Path: path, TimeAsUTC: true}, ch, WithIdentity(fixedIdentity(1)))

	outcome, err := w.LogEntry(Entry{Lines: []string{"via entry"}, Level: Warning, Indent: 2})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLogged, outcome)
	assert.Equal(t, []string{"  via entry"}, ch.warnings)
}

func TestDispatch_RoutesToExactlyOneChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		read  func(c *recordingChannels) []string
	}{
		{Error, func(c *recordingChannels) []string { return c.errors }},
		{Warning, func(c *recordingChannels) []string { return c.warnings }},
		{Verbose, func(c *recordingChannels) []string { return c.verbose }},
		{Debug, func(c *recordingChannels) []string { return c.debug }},
		{Informational, func(c *recordingChannels) []string { return c.info }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			ch := &recordingChannels{}
			w := New(&settings.Static{Disabled: true}, ch, WithIdentity(fixedIdentity(1)))

			_, err := w.Log([]string{"routed"}, tt.level, 0, nil)
			require.NoError(t, err)

			assert.Equal(t, 1, ch.total())
			assert.Equal(t, []string{"routed"}, tt.read(ch))
		})
	}
}

func TestDispatch_InformationalFallback(t *testing.T) {
	t.Parallel()

	newDegradedWriter := func(t *testing.T, interactive bool) (*Writer, string) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		out := filepath.Join(t.TempDir(), "console")
		f, err := os.Create(out)
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })

		// MockChannels carries no informational channel, so the writer
		// degrades to the console fallback.
		w := New(&settings.Static{Disabled: true}, mocks.NewMockChannels(ctrl),
			WithIdentity(fixedIdentity(1)), WithConsoleFallback(f))
		w.fallback.interactive = func(int) bool { return interactive }
		return w, out
	}

	t.Run("interactive console receives the message", func(t *testing.T) {
		t.Parallel()
		w, out := newDegradedWriter(t, true)

		_, err := w.Log([]string{"hello"}, Informational, 0, nil)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
	})

	t.Run("non-interactive console discards silently", func(t *testing.T) {
		t.Parallel()
		w, out := newDegradedWriter(t, false)

		_, err := w.Log([]string{"hello"}, Informational, 0, nil)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Empty(t, string(data))
	})
}

func TestAppendLine_CreatesAndAppends(t *testing.T) {
	t.Parallel()

	path := tempLogPath(t)
	require.NoError(t, appendLine(path, "first"))
	require.NoError(t, appendLine(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}
