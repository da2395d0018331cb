// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package invocation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stacklok/logkit/logwriter"
)

const (
	// RedactionMarker replaces the value of redacted parameters in the
	// rendered line; the parameter name itself is still shown.
	RedactionMarker = "<redacted>"

	// DefaultMaxDepth bounds nested value serialization.
	DefaultMaxDepth = 20

	// unserializableMarker replaces a value whose rendering failed.
	unserializableMarker = "<unserializable>"
)

// Parameter names never rendered, regardless of caller-supplied lists.
var fixedExcluded = []string{}

// Parameter names whose values are always redacted. Matching is
// case-insensitive so a credential never leaks through a casing variant.
var fixedRedacted = []string{
	"AccessToken",
	"AccessKey",
	"Credential",
	"Password",
	"SecretKey",
	"Token",
}

// Argument is one bound parameter of an invocation: the parameter name
// and the value bound to it at the call site.
type Argument struct {
	Name  string
	Value any
}

// Descriptor describes a single invocation: the operation's display
// name, its version tag, and the bound arguments in call-site order.
// Call sites construct descriptors explicitly; this package performs no
// reflection over callers.
type Descriptor struct {
	Name    string
	Version string
	Args    []Argument
}

// Logger renders invocation descriptors into human-readable lines and
// forwards them to a log writer at Verbose level.
type Logger struct {
	writer   *logwriter.Writer
	maxDepth int
}

// Option configures a Logger created by New.
type Option func(*Logger)

// WithMaxDepth bounds the nesting depth of serialized argument values.
// The default is DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(l *Logger) {
		l.maxDepth = n
	}
}

// New creates an invocation Logger over the given writer.
func New(w *logwriter.Writer, opts ...Option) *Logger {
	l := &Logger{
		writer:   w,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogInvocation renders the descriptor as
//
//	[<version>] Executing: <name> -Arg1 value1 -Arg2 value2 ...
//
// and logs it at Verbose level. The redact and exclude lists extend the
// fixed process-wide lists; a name in either exclude list is omitted
// entirely, taking precedence over redaction. Rendering failures are
// isolated per argument: a failing value becomes a placeholder and the
// rest of the line is still emitted.
func (l *Logger) LogInvocation(d Descriptor, redact, exclude []string) (logwriter.Outcome, error) {
	parts := make([]string, 0, len(d.Args)+1)
	parts = append(parts, d.Name)
	for _, arg := range d.Args {
		if containsFold(fixedExcluded, arg.Name) || containsFold(exclude, arg.Name) {
			continue
		}
		parts = append(parts, l.renderArgument(arg, redact))
	}

	line := fmt.Sprintf("[%s] Executing: %s", d.Version, strings.Join(parts, " "))
	return l.writer.Log([]string{line}, logwriter.Verbose, 0, nil)
}

// renderArgument produces one "-name value" token. Redaction wins over
// serialization; booleans render as switch tokens.
func (l *Logger) renderArgument(arg Argument, redact []string) string {
	if containsFold(fixedRedacted, arg.Name) || containsFold(redact, arg.Name) {
		return fmt.Sprintf("-%s %s", arg.Name, RedactionMarker)
	}

	switch v := arg.Value.(type) {
	case bool:
		return fmt.Sprintf("-%s:%s", arg.Name, boolToken(v))
	case *bool:
		if v != nil {
			return fmt.Sprintf("-%s:%s", arg.Name, boolToken(*v))
		}
	}

	return fmt.Sprintf("-%s %s", arg.Name, l.renderValue(arg.Value))
}

// renderValue serializes a single argument value as compact JSON with
// nesting bounded at maxDepth. Failures are contained to the argument:
// a marshal error or panic yields the placeholder instead of aborting
// the invocation log.
func (l *Logger) renderValue(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = unserializableMarker
		}
	}()

	data, err := json.Marshal(boundDepth(v, l.maxDepth))
	if err != nil {
		return unserializableMarker
	}
	return string(data)
}

// boundDepth truncates container nesting below the depth limit so deeply
// nested or self-referential values cannot blow up serialization.
// Containers past the limit collapse to "...". Scalars and structs pass
// through untouched; json.Marshal's own cycle detection covers pointer
// cycles and reports them as a marshal error.
func boundDepth(v any, depth int) any {
	switch t := v.(type) {
	case map[string]any:
		if depth <= 0 {
			return "..."
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = boundDepth(e, depth-1)
		}
		return out
	case []any:
		if depth <= 0 {
			return "..."
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = boundDepth(e, depth-1)
		}
		return out
	default:
		return v
	}
}

func boolToken(b bool) string {
	if b {
		return "$true"
	}
	return "$false"
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
