// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileOptions is the YAML document accepted by FileProvider.
type fileOptions struct {
	LogPath        string `yaml:"log_path"`
	DisableLogging bool   `yaml:"disable_logging"`
	LogTimeAsUTC   bool   `yaml:"log_time_as_utc"`
	LogProcessID   bool   `yaml:"log_process_id"`
}

// FileProvider serves options loaded from a YAML settings file.
// Values are a snapshot as of the last successful LoadFile or Reload.
type FileProvider struct {
	path string

	mu   sync.RWMutex
	opts fileOptions
}

// LoadFile reads the YAML settings file at path and returns a Provider
// over its contents. Unknown keys in the document are an error.
func LoadFile(path string) (*FileProvider, error) {
	p := &FileProvider{path: path}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the settings file. On error the previous snapshot is
// left in place.
func (p *FileProvider) Reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("reading settings file %s: %w", p.path, err)
	}

	var opts fileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing settings file %s: %w", p.path, err)
	}

	p.mu.Lock()
	p.opts = opts
	p.mu.Unlock()
	return nil
}

// LogPath returns the configured destination file.
func (p *FileProvider) LogPath() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.LogPath
}

// DisableLogging reports whether file writes are suppressed.
func (p *FileProvider) DisableLogging() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.DisableLogging
}

// LogTimeAsUTC reports whether timestamps render in UTC.
func (p *FileProvider) LogTimeAsUTC() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.LogTimeAsUTC
}

// LogProcessID reports whether the process-id field is included.
func (p *FileProvider) LogProcessID() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.LogProcessID
}
