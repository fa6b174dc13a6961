package storage

import (
	"osctest/internal/domain"
	"osctest/internal/sequence"
)

// Storage loads and saves test sequences (e.g. for run --sequence and list --export).
type Storage interface {
	Load(path string) ([]domain.TestCase, error)
	Save(path string, cases []domain.TestCase) error
}

// FileStorage stores sequences as JSON or YAML files, picked by extension.
type FileStorage struct {
	parser *sequence.Parser
}

// NewFileStorage returns a Storage that reads/writes sequence files.
func NewFileStorage(parser *sequence.Parser) *FileStorage {
	return &FileStorage{parser: parser}
}
