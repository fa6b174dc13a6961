package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"osctest/internal/domain"
	"osctest/internal/sequence"

	"gopkg.in/yaml.v3"
)

// Load reads a sequence file and converts it to test cases.
func (s *FileStorage) Load(path string) ([]domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence file: %w", err)
	}

	var entries []sequence.Entry
	if isYAML(path) {
		err = yaml.Unmarshal(data, &entries)
	} else {
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("parse sequence %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("sequence %s has no entries", path)
	}

	cases, err := s.parser.ToCases(entries)
	if err != nil {
		return nil, fmt.Errorf("sequence %s: %w", path, err)
	}
	return cases, nil
}

// Save writes test cases to a sequence file.
func (s *FileStorage) Save(path string, cases []domain.TestCase) error {
	entries := s.parser.FromCases(cases)

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(entries)
	} else {
		data, err = json.MarshalIndent(entries, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal sequence: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write sequence: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
