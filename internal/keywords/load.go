package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VocabularyFile is the on-disk shape of a custom vocabulary:
//
//	terms:
//	  - go
//	  - kubernetes
//	  - machine learning
type VocabularyFile struct {
	Terms []string `yaml:"terms"`
}

// LoadVocabulary reads a YAML vocabulary file. An empty path returns nil, which
// NewMatcher treats as the built-in vocabulary.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var file VocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	if len(file.Terms) == 0 {
		return nil, fmt.Errorf("vocabulary file %s has no terms", path)
	}
	return file.Terms, nil
}

// LoadMatcher builds a Matcher from the vocabulary file at path, or from the built-in
// vocabulary when path is empty.
func LoadMatcher(path string) (*Matcher, error) {
	terms, err := LoadVocabulary(path)
	if err != nil {
		return nil, err
	}
	return NewMatcher(terms), nil
}
