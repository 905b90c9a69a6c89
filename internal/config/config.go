// Package config handles the user's vocabulary file and config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Entry is one vocabulary item.
type Entry struct {
	Word  string `yaml:"word"`
	Gloss string `yaml:"gloss"`
	Notes string `yaml:"notes,omitempty"`
}

// Vocabulary is the user's word list.
type Vocabulary struct {
	Entries []Entry `yaml:"vocabulary"`
}

// LoadVocabulary loads a vocabulary YAML file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file: %w", err)
	}

	return &vocab, nil
}

// SaveVocabulary saves a vocabulary YAML file.
func SaveVocabulary(path string, vocab *Vocabulary) error {
	out, err := yaml.Marshal(vocab)
	if err != nil {
		return fmt.Errorf("marshaling vocabulary: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing vocabulary file: %w", err)
	}

	return nil
}

// DefaultVocabulary returns the starter word list used when the user has no
// vocabulary file yet.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{Entries: []Entry{
		{Word: "한국", Gloss: "Korea"},
		{Word: "이름", Gloss: "name"},
		{Word: "사람", Gloss: "person"},
		{Word: "학생", Gloss: "student"},
		{Word: "선생님", Gloss: "teacher"},
		{Word: "책", Gloss: "book"},
		{Word: "의자", Gloss: "chair"},
		{Word: "탁자", Gloss: "table"},
		{Word: "집", Gloss: "house"},
		{Word: "나무", Gloss: "tree"},
		{Word: "컴퓨터", Gloss: "computer"},
		{Word: "먹다", Gloss: "to eat", Notes: "verb"},
		{Word: "있다", Gloss: "to exist, to have", Notes: "verb"},
		{Word: "이다", Gloss: "to be", Notes: "verb"},
	}}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "study-korean"), nil
}
