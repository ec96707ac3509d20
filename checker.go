// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonfg

import (
	"context"
	"errors"
	"time"

	"github.com/creachadair/jsonfg/catalog"
	"github.com/creachadair/jsonfg/diag"
	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/index"
	"github.com/creachadair/jsonfg/rule"
	"github.com/creachadair/jsonfg/syntax"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure a Checker. A nil *Options provides default values as
// described.
type Options struct {
	// The rules to apply. If nil, use the complete catalog.
	Rules []rule.Rule

	// Severities for each rule. Rules not listed have severity Error.
	Levels diag.Levels

	// Accept comments and trailing commas in the input (JWCC).
	AllowComments bool

	// If non-nil, send logs here. By default, logs are discarded.
	Logger *zap.Logger
}

func (o *Options) rules() []rule.Rule {
	if o == nil || o.Rules == nil {
		return catalog.All()
	}
	return o.Rules
}

func (o *Options) levels() diag.Levels {
	if o == nil {
		return nil
	}
	return o.Levels
}

func (o *Options) allowComments() bool { return o != nil && o.AllowComments }

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// A Checker checks documents against a set of rules. A Checker is safe for
// concurrent use by multiple goroutines.
type Checker struct {
	rules         []rule.Rule
	levels        diag.Levels
	allowComments bool
	log           *zap.Logger
}

// New constructs a Checker with the given options.
func New(opts *Options) *Checker {
	return &Checker{
		rules:         opts.rules(),
		levels:        opts.levels(),
		allowComments: opts.allowComments(),
		log:           opts.logger(),
	}
}

// Result is the outcome of a single pass.
type Result struct {
	ID          uuid.UUID         // a unique identifier for the pass
	Gen         uint64            // the session generation, or 0
	Source      []byte            // the text that was checked
	Diagnostics []diag.Diagnostic // in order of position

	// If the source could not be decoded, Err reports why and there are no
	// diagnostics. A malformed document is not an error of the pass.
	Err error

	// Faults records rules that failed during the pass. Their results are
	// omitted from the diagnostics.
	Faults []*rule.Fault
}

// Check runs a complete pass over src.
func (c *Checker) Check(src []byte) *Result {
	res, _ := c.CheckContext(context.Background(), src) // cannot fail
	return res
}

// CheckContext runs a complete pass over src. If ctx ends before the pass is
// complete, CheckContext returns nil and the error from ctx.
func (c *Checker) CheckContext(ctx context.Context, src []byte) (*Result, error) {
	return c.check(ctx, src, 0)
}

func (c *Checker) check(ctx context.Context, src []byte, gen uint64) (*Result, error) {
	start := time.Now()
	res := &Result{ID: uuid.New(), Gen: gen, Source: src}
	log := c.log.With(zap.Stringer("pass", res.ID), zap.Uint64("gen", gen))

	tree, serr := syntax.Parse(src, &syntax.Options{AllowComments: c.allowComments})
	if serr != nil {
		log.Debug("syntax error", zap.Error(serr))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x := index.Build(tree)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := feature.DecodeDocument(src, &feature.DecodeOptions{AllowComments: c.allowComments})
	if err != nil {
		log.Debug("decoding failed", zap.Error(err))
		res.Err = err
		return res, nil
	} else if doc == nil {
		log.Debug("not a feature or feature collection")
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vs, err := rule.ApplyAll(c.rules, doc)
	if err != nil {
		res.Faults = faults(err)
		for _, f := range res.Faults {
			log.Warn("rule failed", zap.String("rule", f.Rule), zap.Any("panic", f.Value))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Diagnostics = diag.Emit(x, vs, c.levels)
	diag.Sort(res.Diagnostics)
	log.Debug("pass complete",
		zap.Duration("duration", time.Since(start)),
		zap.Int("indexed", x.Len()),
		zap.Int("diagnostics", len(res.Diagnostics)),
	)
	return res, nil
}

// faults extracts the rule faults combined in err.
func faults(err error) []*rule.Fault {
	errs := []error{err}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs = u.Unwrap()
	}
	var out []*rule.Fault
	for _, e := range errs {
		var f *rule.Fault
		if errors.As(e, &f) {
			out = append(out, f)
		}
	}
	return out
}
