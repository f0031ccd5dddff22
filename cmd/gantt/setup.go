package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/app"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/cli"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/config"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/store"
	"github.com/spf13/cobra"
)

// loadConfig reads the project config; a relative store.path is taken
// relative to the config directory
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if !filepath.IsAbs(cfg.Store.Path) && flags.configDir != "." && flags.configDir != "" {
		cfg.Store.Path = filepath.Join(flags.configDir, cfg.Store.Path)
	}
	return cfg, nil
}

// newLogger builds the slog logger. The view must not write to the terminal,
// so it discards logs unless a log file is set.
func newLogger(flags *globalFlags, cfg *config.Config, interactive bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	path := flags.logFile
	if path == "" {
		path = cfg.UI.LogFile
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	}
	if interactive {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
}

// loadRegistry returns the boards registry, or an empty one if it cannot be
// read
func loadRegistry(logger *slog.Logger) (*config.BoardsRegistry, string) {
	path, err := config.DefaultRegistryPath()
	if err != nil {
		logger.Warn("no user config directory, boards unavailable", "error", err)
		return &config.BoardsRegistry{}, ""
	}
	reg, err := config.LoadBoardsRegistry(path)
	if err != nil {
		logger.Error("failed to load boards registry", "path", path, "error", err)
		return &config.BoardsRegistry{}, path
	}
	return reg, path
}

// setup loads config, logging and the task source for one command
func setup(flags *globalFlags, interactive bool) (*cli.Dependencies, func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	logger, cleanup, err := newLogger(flags, cfg, interactive)
	if err != nil {
		return nil, nil, err
	}

	reg, _ := loadRegistry(logger)
	path, err := cli.ResolveStorePath(cfg, flags.file, flags.board, reg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Debug("resolved task document", "path", path)

	deps := cli.NewDependencies(cfg, store.NewSource(path, os.Stdin), logger)
	return deps, cleanup, nil
}

func runView(cmd *cobra.Command, flags *globalFlags) error {
	deps, cleanup, err := setup(flags, true)
	if err != nil {
		return err
	}
	defer cleanup()

	title := flags.board
	if title == "" {
		title = deps.Client.Source().Name()
	}
	model := app.New(app.Options{
		Config: deps.Config,
		Client: deps.Client,
		Logger: deps.Logger,
		Title:  title,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context())}
	if flags.file == "-" {
		// stdin carries the document, so keys come from the terminal
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("stdin holds the tasks and no terminal is available: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func boardsCmd(flags *globalFlags) *cobra.Command {
	// registry opens the boards file; logs go to stderr
	registry := func() (*config.BoardsRegistry, string, error) {
		cfg, err := loadConfig(flags)
		if err != nil {
			return nil, "", err
		}
		logger, cleanup, err := newLogger(flags, cfg, false)
		if err != nil {
			return nil, "", err
		}
		defer cleanup()
		reg, path := loadRegistry(logger)
		if path == "" {
			return nil, "", fmt.Errorf("no location for the boards registry")
		}
		return reg, path, nil
	}

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Manage named task documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := registry()
			if err != nil {
				return err
			}
			return cli.BoardsListCommand(cmd.OutOrStdout(), reg)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <path>",
			Short: "Register a task document under a name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				reg, path, err := registry()
				if err != nil {
					return err
				}
				return cli.BoardsAddCommand(cmd.OutOrStdout(), reg, path, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Forget a board",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				reg, path, err := registry()
				if err != nil {
					return err
				}
				return cli.BoardsRemoveCommand(cmd.OutOrStdout(), reg, path, args[0])
			},
		},
		&cobra.Command{
			Use:   "default <name>",
			Short: "Open this board when no file is given",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				reg, path, err := registry()
				if err != nil {
					return err
				}
				return cli.BoardsDefaultCommand(cmd.OutOrStdout(), reg, path, args[0])
			},
		},
	)
	return cmd
}

func configCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}

	var yamlFormat bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.JSONFileName
			if yamlFormat {
				name = config.YAMLFileName
			}
			path := filepath.Join(flags.configDir, name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&yamlFormat, "yaml", false, "write YAML instead of JSON")
	cmd.AddCommand(initCmd)
	return cmd
}
