package config

import (
	"fmt"
	"strings"
)

// TokenErrorKind tells why the token could not be loaded
type TokenErrorKind int

const (
	FileUnreadable TokenErrorKind = iota
	FileEmpty
)

type TokenError struct {
	Kind TokenErrorKind
	Path string
	Err  error
}

func (e *TokenError) Error() string {
	switch e.Kind {
	case FileEmpty:
		return fmt.Sprintf("no Genius API token in %s", e.Path)
	default:
		return fmt.Sprintf("failed to read Genius API token from %s: %v", e.Path, e.Err)
	}
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// LoadToken returns the LYRICAL_TOKEN override when set, otherwise the first
// line of the token file. readFile is normally os.ReadFile.
func (s Settings) LoadToken(readFile func(string) ([]byte, error)) (string, error) {
	if s.Token != "" {
		return s.Token, nil
	}

	path := s.TokenPath()
	data, err := readFile(path)
	if err != nil {
		return "", &TokenError{Kind: FileUnreadable, Path: path, Err: err}
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", &TokenError{Kind: FileEmpty, Path: path}
	}

	return line, nil
}
