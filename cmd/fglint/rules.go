// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/creachadair/jsonfg/catalog"
	"github.com/creachadair/jsonfg/internal/config"
	"github.com/spf13/cobra"
)

func newRulesCmd(st *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the conformance rules and their severities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := st.cfg.Levels()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tSEVERITY\tDESCRIPTION")
			for _, r := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, levels.Of(r.Name), r.Description)
			}
			return tw.Flush()
		},
	}
}

func newInitCmd(st *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			levels := st.cfg.Levels()
			cfg := config.Default()
			cfg.Rules = make(map[string]config.Rule)
			for _, name := range catalog.Names() {
				cfg.Rules[name] = config.Rule{Severity: levels.Of(name)}
			}
			if err := cfg.Write(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", path)
			return nil
		},
	}
}
