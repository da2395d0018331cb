// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		indent  int
		wantErr bool
	}{
		{"zero indent", 0, false},
		{"maximum indent", MaxIndent, false},
		{"mid-range indent", 12, false},
		{"negative indent", -1, true},
		{"above maximum", MaxIndent + 1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Entry{Lines: []string{"x"}, Indent: tt.indent}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsoleFallback_NilOutputDiscards(t *testing.T) {
	t.Parallel()

	c := newConsoleFallback(nil)
	// Must not panic; a host with no console simply loses the output.
	c.Informational("dropped")
}
