// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	// Getenv returns the value of the environment variable named by the key.
	Getenv(key string) string
	// LookupEnv returns the value and whether the variable is set at all,
	// so callers can distinguish an unset variable from an empty one.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv reports the value of the environment variable and whether it is set
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed in-memory map. It is intended
// for tests and for hosts that capture their environment up front.
type MapReader map[string]string

// Getenv returns the mapped value, or the empty string when absent
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv reports the mapped value and whether the key is present
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
