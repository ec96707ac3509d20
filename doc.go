// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonfg checks OGC JSON-FG documents for conformance and reports
// each problem against the range of source text where it occurs.
//
// # Checking
//
// A Checker runs a single pass over a source text: it parses the text into a
// concrete syntax tree and indexes the source range of every value by its
// JSON Pointer; it decodes and classifies the document as a Feature or a
// FeatureCollection; it applies the conformance rules; and it resolves each
// violation to a diagnostic through the index.
//
//	c := jsonfg.New(nil)
//	res := c.Check(input)
//	for _, d := range res.Diagnostics {
//	   log.Printf("%v at %d: %s", d.Severity, d.Span.Pos, d.Message)
//	}
//
// A document that is not well-formed JSON, or is not a Feature or
// FeatureCollection, has no diagnostics. In the first case the Result
// records the decoding error in its Err field.
//
// # Sessions
//
// A Session runs passes for a document that is being edited. Each call to
// Update starts a new pass for the latest text, and abandons any pass still
// running for earlier text. A Session publishes the result of a pass only if
// no later Update has occurred, so results are never stale or merged:
//
//	s := c.NewSession(func(r *jsonfg.Result) { show(r.Diagnostics) })
//	defer s.Close()
//	s.Update(text)
//
// # Packages
//
// The pieces of a pass are available separately: package syntax parses the
// source text, package index maps pointers to source ranges, package feature
// decodes and classifies documents, package rule applies rules, package
// catalog defines the conformance rules, and package diag converts and
// formats diagnostics.
package jsonfg
