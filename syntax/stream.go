// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go4.org/mem"
)

// An Anchor represents a token in source text. The methods of an Anchor
// report the span, token type, and contents of the anchor.
type Anchor interface {
	Token() Token // Returns the token type of the anchor
	Text() mem.RO // Returns a view of the raw (undecoded) text of the anchor
	Span() Span   // Returns the byte span of the anchor
}

// A Handler handles events from parsing an input.  If a method reports an
// error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Begin a new object member, whose key is at loc.  The text of the key is
	// still quoted (see Unquote).
	BeginMember(loc Anchor) error

	// End the current object member giving the location and type of the token
	// that terminated the member (either Comma or RBrace).
	EndMember(loc Anchor) error

	// Report a data value at the given location. The type of the value can be
	// recovered from the token. String tokens are quoted.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input.
	EndOfInput(loc Anchor)
}

// Stream is a parser that consumes input and delivers events to a Handler
// corresponding with the structure of the input.
type Stream struct {
	s      *Scanner
	tcomma bool // allow trailing commas in objects and arrays
}

// NewStream constructs a new Stream that consumes src.
func NewStream(src mem.RO) *Stream { return &Stream{s: NewScanner(src)} }

// AllowComments configures the scanner associated with s to skip (true) or
// reject (false) comments.
func (s *Stream) AllowComments(ok bool) { s.s.AllowComments(ok) }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (s *Stream) AllowTrailingCommas(ok bool) { s.tcomma = ok }

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses a single value from the input and delivers events to h. It
// reports an error if the input contains anything other than whitespace (and
// comments, if enabled) after the value. If no value is available, Parse
// returns io.EOF. In case of a syntax error, the returned error has type
// [*SyntaxError].
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if err := s.nextToken(); errors.Is(err, io.EOF) {
		h.EndOfInput(s.s)
		return io.EOF
	} else if err != nil {
		s.syntaxError(err, "%s", describe(err))
	}
	s.parseElement(h)

	if err := s.nextToken(); err == nil {
		s.syntaxError(nil, "unexpected %v after value", s.s.Token())
	} else if !errors.Is(err, io.EOF) {
		s.syntaxError(err, "%s", describe(err))
	}
	h.EndOfInput(s.s)
	return nil
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (s *Stream) parseElement(h Handler) {
	switch tok := s.s.Token(); tok {
	case LBrace:
		s.checkError(h.BeginObject(s.s))
		s.parseMembers(h)
		s.checkError(h.EndObject(s.s))
	case LSquare:
		s.checkError(h.BeginArray(s.s))
		s.parseElements(h)
		s.checkError(h.EndArray(s.s))
	case Integer, Number, String, True, False, Null:
		s.checkError(h.Value(s.s))
	case RBrace, RSquare, Comma, Colon:
		s.syntaxError(nil, "unexpected %v", tok)
	default:
		s.syntaxError(nil, "unknown token %v", tok)
	}
}

// parseMembers consumes zero of more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (s *Stream) parseMembers(h Handler) {
	if s.advance(RBrace, String) == RBrace {
		return // empty object
	}
	for {
		s.checkError(h.BeginMember(s.s))
		s.advance(Colon)
		s.advance()
		s.parseElement(h)

		tok := s.advance(RBrace, Comma)
		s.checkError(h.EndMember(s.s))
		if tok == RBrace {
			return
		}
		if s.tcomma {
			if s.advance(String, RBrace) == RBrace {
				return // trailing comma
			}
		} else {
			s.advance(String)
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (s *Stream) parseElements(h Handler) {
	if s.advance() == RSquare {
		return // empty array
	}
	s.parseElement(h)
	for {
		if s.advance(RSquare, Comma) == RSquare {
			return
		}
		if next := s.advance(); s.tcomma && next == RSquare {
			return // trailing comma
		}
		s.parseElement(h)
	}
}

// nextToken advances to the next non-comment token.
func (s *Stream) nextToken() error {
	for {
		if err := s.s.Next(); err != nil {
			return err
		}
		if tok := s.s.Token(); tok != LineComment && tok != BlockComment {
			return nil
		}
	}
}

func (s *Stream) advance(tokens ...Token) Token {
	if err := s.nextToken(); errors.Is(err, io.EOF) {
		if len(tokens) == 0 {
			s.syntaxError(io.ErrUnexpectedEOF, "unexpected end of input")
		}
		s.syntaxError(io.ErrUnexpectedEOF, "%v", tokLabel(tokens, "end of input"))
	} else if err != nil {
		s.syntaxError(err, "%s", describe(err))
	}
	tok := s.s.Token()
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		s.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

func (s *Stream) syntaxError(err error, msg string, args ...any) {
	pos := s.s.Span().Pos
	if err != nil {
		pos = s.s.Offset()
	}
	panic(&SyntaxError{
		Offset:  pos,
		Message: fmt.Sprintf(msg, args...),
		err:     err,
	})
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

// describe returns the message of a scanner error, without its offset.
func describe(err error) string {
	var pe posError
	if errors.As(err, &pe) {
		return pe.err.Error()
	}
	return err.Error()
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset  int // byte offset of the error in the input
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
