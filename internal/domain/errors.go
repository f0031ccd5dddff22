package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound    = errors.New("not found")
	ErrNotList     = errors.New("task collection is not a list")
	ErrMissingDate = errors.New("missing date")
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidJSON = errors.New("invalid JSON")
)

// StoreError represents a structural or I/O failure while loading tasks
type StoreError struct {
	Op      string // Operation: "read", "parse", "decode"
	Path    string // Optional: source file
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.Path != "" {
		if e.Message != "" {
			return fmt.Sprintf("store %s [%s]: %s", e.Op, e.Path, e.Message)
		}
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("store %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s failed", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error while loading or saving configuration
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
