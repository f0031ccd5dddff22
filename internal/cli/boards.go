package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/config"
)

// ResolveStorePath picks the task document to open. Precedence: --file, then
// --board, then an existing store.path, then the default board, then
// store.path as configured.
func ResolveStorePath(cfg *config.Config, file, board string, reg *config.BoardsRegistry) (string, error) {
	if file != "" {
		return file, nil
	}
	if board != "" {
		if reg == nil {
			return "", fmt.Errorf("board %q: %w", board, config.ErrBoardNotFound)
		}
		b, err := reg.Get(board)
		if err != nil {
			return "", fmt.Errorf("board %q: %w", board, err)
		}
		return b.Path, nil
	}
	if _, err := os.Stat(cfg.Store.Path); err == nil {
		return cfg.Store.Path, nil
	}
	if reg != nil {
		if b := reg.GetDefault(); b != nil {
			return b.Path, nil
		}
	}
	return cfg.Store.Path, nil
}

// BoardsListCommand prints the registered boards, marking the default
func BoardsListCommand(w io.Writer, reg *config.BoardsRegistry) error {
	if len(reg.Boards) == 0 {
		fmt.Fprintln(w, "No boards registered (use 'gantt boards add <name> <path>')")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \tNAME\tPATH")
	for _, b := range reg.Boards {
		mark := " "
		if b.Name == reg.DefaultBoard {
			mark = green("*")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, b.Name, b.Path)
	}
	return tw.Flush()
}

// BoardsAddCommand registers a board and saves the registry
func BoardsAddCommand(w io.Writer, reg *config.BoardsRegistry, path, name, file string) error {
	if err := reg.Add(name, file); err != nil {
		if errors.Is(err, config.ErrDuplicateBoard) {
			return fmt.Errorf("board %q already exists (remove it first)", name)
		}
		return err
	}
	if err := config.SaveBoardsRegistry(reg, path); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	b, _ := reg.Get(name)
	fmt.Fprintf(w, "%s Added board %s → %s\n", green("✓"), bold(name), b.Path)
	return nil
}

// BoardsRemoveCommand unregisters a board and saves the registry
func BoardsRemoveCommand(w io.Writer, reg *config.BoardsRegistry, path, name string) error {
	if err := reg.Remove(name); err != nil {
		return fmt.Errorf("board %q: %w", name, err)
	}
	if err := config.SaveBoardsRegistry(reg, path); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	fmt.Fprintf(w, "%s Removed board %s\n", green("✓"), bold(name))
	return nil
}

// BoardsDefaultCommand sets the default board and saves the registry
func BoardsDefaultCommand(w io.Writer, reg *config.BoardsRegistry, path, name string) error {
	if err := reg.SetDefault(name); err != nil {
		return fmt.Errorf("board %q: %w", name, err)
	}
	if err := config.SaveBoardsRegistry(reg, path); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	fmt.Fprintf(w, "%s Default board is now %s\n", green("✓"), bold(name))
	return nil
}
