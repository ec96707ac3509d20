// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/creachadair/jsonfg"
	"github.com/creachadair/jsonfg/diag"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(st *settings) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "check file.json ...",
		Short: "Check documents and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.checker()
			if err != nil {
				return err
			}
			reports, err := checkFiles(cmd.Context(), st.logger, c, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				err = writeJSON(out, reports)
			} else {
				err = writeText(out, reports, st.color)
			}
			if err != nil {
				return err
			}
			for _, r := range reports {
				if diag.Worst(r.diags) == diag.Error {
					return errProblems
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output diagnostics in JSON format")
	return cmd
}

// A report is the outcome of checking one file.
type report struct {
	path  string
	src   []byte
	diags []diag.Diagnostic
	err   error // decoding error, if any
}

// checkFiles checks each of paths concurrently, and returns their reports in
// the same order. It fails if any file cannot be read.
func checkFiles(ctx context.Context, log *zap.Logger, c *jsonfg.Checker, paths []string) ([]*report, error) {
	reports := make([]*report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			res, err := c.CheckContext(ctx, src)
			if err != nil {
				return err
			}
			if res.Err != nil {
				log.Info("document not checked", zap.String("path", path), zap.Error(res.Err))
			}
			reports[i] = &report{path: path, src: src, diags: res.Diagnostics, err: res.Err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeText(w io.Writer, reports []*report, color bool) error {
	for _, r := range reports {
		if r.err != nil {
			fmt.Fprintf(w, "%s: not checked: %v\n", r.path, r.err)
			continue
		}
		err := diag.Format(w, r.src, r.diags, diag.FormatOptions{Filename: r.path, Color: color})
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonReport is the JSON encoding of a report.
type jsonReport struct {
	File        string           `json:"file"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Rule     string        `json:"rule"`
	Severity diag.Severity `json:"severity"`
	Message  string        `json:"message"`
	Pointer  string        `json:"pointer"`
	From     int           `json:"from"`
	To       int           `json:"to"`
	Line     int           `json:"line"`
	Column   int           `json:"column"`
}

func writeJSON(w io.Writer, reports []*report) error {
	out := make([]jsonReport, len(reports))
	for i, r := range reports {
		out[i] = jsonReport{File: r.path, Diagnostics: []jsonDiagnostic{}}
		if r.err != nil {
			out[i].Error = r.err.Error()
		}
		lines := diag.NewLines(r.src)
		for _, d := range r.diags {
			pos := lines.Position(d.Span.Pos)
			out[i].Diagnostics = append(out[i].Diagnostics, jsonDiagnostic{
				Rule:     d.Rule,
				Severity: d.Severity,
				Message:  d.Message,
				Pointer:  string(d.Pointer),
				From:     d.Span.Pos,
				To:       d.Span.End,
				Line:     pos.Line,
				Column:   pos.Column + 1,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
