package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// BoardsRegistry holds the named task documents a user can open by name
type BoardsRegistry struct {
	Boards       []Board `json:"boards"`
	DefaultBoard string  `json:"defaultBoard"`
}

// Board is a named task document
type Board struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var (
	// ErrBoardNotFound is returned when a board doesn't exist in the registry
	ErrBoardNotFound = errors.New("board not found")
	// ErrDuplicateBoard is returned when trying to add a board that already exists
	ErrDuplicateBoard = errors.New("board already exists")
	// ErrEmptyName is returned when the board name is empty
	ErrEmptyName = errors.New("board name cannot be empty")
	// ErrEmptyPath is returned when the board path is empty
	ErrEmptyPath = errors.New("board path cannot be empty")
)

// DefaultRegistryPath returns ~/.config/ncs-gantt/boards.json
func DefaultRegistryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ncs-gantt", "boards.json"), nil
}

// LoadBoardsRegistry loads the registry at path.
// Returns an empty registry if the file doesn't exist
func LoadBoardsRegistry(path string) (*BoardsRegistry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &BoardsRegistry{Boards: []Board{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var registry BoardsRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, err
	}
	if registry.Boards == nil {
		registry.Boards = []Board{}
	}
	return &registry, nil
}

// SaveBoardsRegistry saves the registry to path, creating its directory
func SaveBoardsRegistry(reg *BoardsRegistry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Add adds a new board. Relative paths are made absolute so the board opens
// from any directory.
func (r *BoardsRegistry) Add(name, path string) error {
	if name == "" {
		return ErrEmptyName
	}
	if path == "" {
		return ErrEmptyPath
	}

	for _, b := range r.Boards {
		if b.Name == name {
			return ErrDuplicateBoard
		}
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.Boards = append(r.Boards, Board{Name: name, Path: path})

	// Set as default if it's the first board
	if len(r.Boards) == 1 {
		r.DefaultBoard = name
	}
	return nil
}

// Remove removes a board from the registry
func (r *BoardsRegistry) Remove(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	found := false
	for i, b := range r.Boards {
		if b.Name == name {
			r.Boards = append(r.Boards[:i], r.Boards[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return ErrBoardNotFound
	}

	// Clear default if it was the removed board
	if r.DefaultBoard == name {
		r.DefaultBoard = ""
		if len(r.Boards) > 0 {
			r.DefaultBoard = r.Boards[0].Name
		}
	}
	return nil
}

// SetDefault sets the default board
func (r *BoardsRegistry) SetDefault(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, err := r.Get(name); err != nil {
		return err
	}
	r.DefaultBoard = name
	return nil
}

// Get retrieves a board by name
func (r *BoardsRegistry) Get(name string) (*Board, error) {
	for _, b := range r.Boards {
		if b.Name == name {
			return &b, nil
		}
	}
	return nil, ErrBoardNotFound
}

// GetDefault returns the default board, or nil if none is set
func (r *BoardsRegistry) GetDefault() *Board {
	if r.DefaultBoard == "" {
		return nil
	}
	b, err := r.Get(r.DefaultBoard)
	if err != nil {
		return nil
	}
	return b
}
