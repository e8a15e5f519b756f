package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
)

var (
	_ ports.FieldMapSource = (*FileProvider)(nil)
	_ ports.PayloadSink    = (*FileProvider)(nil)
)

// FileProvider implements ports.FieldMapSource and ports.PayloadSink on local
// files. Field maps may be JSON or YAML, chosen by extension.
type FileProvider struct {
	filePath string
}

// NewFileProvider creates a new FileProvider.
func NewFileProvider(filePath string) *FileProvider {
	return &FileProvider{filePath: filePath}
}

// LoadFieldMap reads a flat field map from the file.
func (p *FileProvider) LoadFieldMap(_ context.Context) (domain.FieldMap, error) {
	byteValue, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.filePath, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(p.filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(byteValue, &raw)
	default:
		dec := json.NewDecoder(bytes.NewReader(byteValue))
		dec.UseNumber()
		err = dec.Decode(&raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.filePath, err)
	}

	fields, err := domain.ParseFieldMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.filePath, err)
	}
	return fields, nil
}

// SavePayload writes the payload as indented JSON.
func (p *FileProvider) SavePayload(_ context.Context, payload domain.DispatchPayload) error {
	byteValue, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := os.WriteFile(p.filePath, append(byteValue, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write to %s: %w", p.filePath, err)
	}
	return nil
}
