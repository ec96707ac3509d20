// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program fglint checks OGC JSON-FG documents for conformance.
//
// Usage:
//
//	fglint check [--json] file.json ...
//	fglint watch file.json ...
//	fglint rules
//	fglint init
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/creachadair/jsonfg"
	"github.com/creachadair/jsonfg/catalog"
	"github.com/creachadair/jsonfg/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errProblems is reported when a check finds error-severity diagnostics.
var errProblems = errors.New("problems found")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintf(os.Stderr, "fglint: %v\n", err)
		}
		os.Exit(1)
	}
}

// settings are the values of the global flags.
type settings struct {
	configPath    string
	verbose       bool
	color         bool
	allowComments bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	st := new(settings)
	root := &cobra.Command{
		Use:           "fglint",
		Short:         "fglint - a conformance checker for JSON-FG documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "Configuration file path")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&st.color, "color", false, "Colorize diagnostic output")
	pf.BoolVar(&st.allowComments, "allow-comments", false, "Accept comments and trailing commas")

	root.AddCommand(
		newCheckCmd(st),
		newWatchCmd(st),
		newRulesCmd(st),
		newInitCmd(st),
	)
	return root
}

// load reads the configuration and constructs the logger.
func (st *settings) load() error {
	if st.configPath == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			st.configPath = config.DefaultPath
		}
	}
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if st.allowComments {
		cfg.AllowComments = true
	}
	st.cfg = cfg

	if st.verbose {
		st.logger, err = zap.NewDevelopment()
	} else {
		st.logger, err = zap.NewProduction()
	}
	return err
}

// checker constructs a checker from the loaded configuration.
func (st *settings) checker() (*jsonfg.Checker, error) {
	cls, err := st.cfg.Classes()
	if err != nil {
		return nil, fmt.Errorf("loading conformance classes: %w", err)
	}
	return jsonfg.New(&jsonfg.Options{
		Rules:         catalog.Rules(cls),
		Levels:        st.cfg.Levels(),
		AllowComments: st.cfg.AllowComments,
		Logger:        st.logger,
	}), nil
}
