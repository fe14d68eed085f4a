package bank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrSourceUnavailable indicates the question-bank text could not be
// fetched. Callers should present a retry-capable error state; it is
// not fatal to the application.
var ErrSourceUnavailable = errors.New("question bank unavailable")

// Source supplies raw question-bank text. The engine is constructed
// only after a successful load and parse; the pre-question loading
// state lives with the caller, not the session engine.
type Source interface {
	// Load returns the raw bank text. A failed read wraps
	// ErrSourceUnavailable.
	Load() (string, error)
}

// FileSource reads a single bank file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	return string(data), nil
}

// DirSource concatenates every .txt bank file in a directory, in
// lexical order, so per-category files combine into one bank.
type DirSource struct {
	Dir string
}

func (s DirSource) Load() (string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return "", fmt.Errorf("%w: read dir %s: %v", ErrSourceUnavailable, s.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, name, err)
		}
		b.Write(data)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// DefaultBankDir resolves the bank directory in priority order:
// 1. QUIZDRILL_BANK environment variable
// 2. $XDG_DATA_HOME/quizdrill/banks
// 3. ~/.local/share/quizdrill/banks
func DefaultBankDir() (string, error) {
	if p := os.Getenv("QUIZDRILL_BANK"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "quizdrill", "banks"), nil
}
