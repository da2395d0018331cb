// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package invocation logs operation invocations: given a descriptor of a
call and its bound arguments, it renders one human-readable line and
forwards it to a logwriter.Writer at Verbose level.

	inv := invocation.New(writer)
	inv.LogInvocation(invocation.Descriptor{
		Name:    "Get-Thing",
		Version: "2.1.0",
		Args: []invocation.Argument{
			{Name: "Id", Value: 5},
			{Name: "AccessToken", Value: "secret"},
			{Name: "Verbose", Value: true},
		},
	}, nil, nil)

	// [2.1.0] Executing: Get-Thing -Id 5 -AccessToken <redacted> -Verbose:$true

# Redaction and Exclusion

Credential-bearing parameter names are redacted by a fixed process-wide
list; callers extend it per invocation with the redact argument. The
exclude argument (plus a fixed exclusion list) omits parameters entirely,
and exclusion takes precedence over redaction. Name matching is
case-insensitive.

# Failure Isolation

A value that cannot be serialized, whether by marshal error or panic,
renders as a placeholder; the remaining arguments and the overall line
are still emitted.
*/
package invocation
