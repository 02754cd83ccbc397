package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/update"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "todo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	config.RegisterFlags(flagSet)
	flagSet.Bool("version", false, "print version and exit")
	flagSet.Bool("reset", false, "delete the saved tasks and theme, then exit")
	flagSet.Usage = func() { printHelp(flagSet) }

	cfg, err := config.Load(flagSet, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if v, _ := flagSet.GetBool("version"); v {
		fmt.Printf("todo %s\n", version)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	logger, err := logging.New(logging.Options{
		File:       cfg.LogFile,
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
		Prefix:     "todo",
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := storage.Open(cfg.Backend, cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reset, _ := flagSet.GetBool("reset"); reset {
		removed, err := storage.Reset(ctx, store)
		if err != nil {
			return fmt.Errorf("reset %s store: %w", cfg.Backend, err)
		}
		logger.Info("store reset", "backend", cfg.Backend, "store", cfg.StorePath, "removed", removed)
		fmt.Printf("removed %d saved keys from %s\n", len(removed), cfg.StorePath)
		return nil
	}

	logger.Info("starting", "version", version, "backend", cfg.Backend, "store", cfg.StorePath, "config", cfg.ConfigFile)
	if infos, err := storage.Inventory(ctx, store); err != nil {
		logger.Warn("list stored keys", "err", err)
	} else {
		for _, info := range infos {
			logger.Debug("stored key", "key", info.Key, "updated_at", info.UpdatedAt)
		}
	}

	model := update.NewModel(update.Options{
		Context:       ctx,
		Repository:    storage.NewKVRepository(store),
		Logger:        logger.Logger,
		Filter:        cfg.InitialFilter(),
		ProgressWidth: cfg.ProgressWidth,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `todo keeps a to-do list in your terminal.

Tasks and the light/dark theme are saved to the configured store and
restored on the next start. Settings come from ./todo.toml (or --config),
then TODO_* environment variables, then flags.

Usage:
  todo [flags]

Flags:
%s`, flagSet.FlagUsages())
}
