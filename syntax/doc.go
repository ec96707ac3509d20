// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package syntax implements a JSON scanner, an event-driven parser, and a
// concrete syntax tree that records the byte span of every element.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON held in memory.
// Construct a scanner from a mem.RO and call its Next method to iterate over
// the input. Next advances to the next input token and returns nil, or
// reports an error:
//
//	s := syntax.NewScanner(mem.B(input))
//	for s.Next() == nil {
//	   log.Printf("Next token: %v at %v", s.Token(), s.Span())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates a lexical error in the input.
//
// # Streaming
//
// The Stream type drives a Handler with events describing the structure of
// the input. The methods of a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// In case of error, parsing is terminated and an error of concrete type
// *syntax.SyntaxError is returned.
//
// # Trees
//
// Parse builds a Tree whose nodes have one of the kinds Root, Object, Array,
// Property, PropertyName, String, Number, True, False, or Null. A Property
// node has a PropertyName child followed by its value. Parse tolerates
// malformed input: it returns the partial tree built before the error along
// with the error, so that callers can still correlate locations in text that
// is being edited.
package syntax
