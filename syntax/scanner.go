// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... <LF>
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",

	BlockComment: "block comment",
	LineComment:  "line comment",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an in-memory source text. Each call to
// Next advances the scanner to the next token, or reports an error.
//
// Unlike a stream scanner, a Scanner never copies the input: the text of each
// token is a view into the source, and all offsets are byte offsets into it.
type Scanner struct {
	src      mem.RO
	comments bool // allow comments
	tok      Token
	err      error

	pos, end int // start and end offsets of current token
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src mem.RO) *Scanner { return &Scanner{src: src} }

// AllowComments configures the scanner to report (true) or reject (false)
// comment tokens. If enabled, C++ style block comments (/* ... */) and line
// comments (// ...) are recognized and emitted as tokens.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid
	s.pos = s.end
	for s.pos < s.src.Len() && isSpace(s.src.At(s.pos)) {
		s.pos++
	}
	s.end = s.pos
	if s.pos >= s.src.Len() {
		return s.setErr(io.EOF)
	}

	ch := s.src.At(s.pos)
	if t, ok := selfDelim(ch); ok {
		s.end++
		s.tok = t
		return nil
	}
	switch {
	case isNumStart(ch):
		return s.scanNumber()
	case ch == '"':
		return s.scanString()
	case ch == '/' && s.comments:
		return s.scanComment()
	case ch == 't':
		return s.scanConstant(True, "true")
	case ch == 'f':
		return s.scanConstant(False, "false")
	case ch == 'n':
		return s.scanConstant(Null, "null")
	}
	r, _ := mem.DecodeRune(s.src.SliceFrom(s.pos))
	return s.failf(s.pos, "unexpected %q", r)
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns a read-only view of the undecoded text of the current token.
func (s *Scanner) Text() mem.RO { return s.src.Slice(s.pos, s.end) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Offset reports the offset of the end of the last token scanned, which is
// also the offset of the first unconsumed byte of input.
func (s *Scanner) Offset() int { return s.end }

func (s *Scanner) scanString() error {
	i := s.pos + 1
	for {
		if i >= s.src.Len() {
			return s.failf(i, "unterminated string")
		}
		switch ch := s.src.At(i); {
		case ch == '"':
			s.end = i + 1
			s.tok = String
			return nil
		case ch == '\\':
			n, err := s.escapeLen(i + 1)
			if err != nil {
				return s.failf(i, "%w", err)
			}
			i += 1 + n
		case ch < ' ':
			return s.failf(i, "unescaped control %q", ch)
		default:
			i++
		}
	}
}

// escapeLen reports the number of bytes following a backslash at i that make
// up a valid escape sequence.
func (s *Scanner) escapeLen(i int) (int, error) {
	if i >= s.src.Len() {
		return 0, errors.New("incomplete escape sequence")
	}
	switch ch := s.src.At(i); ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 1, nil
	case 'u':
		for j := 1; j <= 4; j++ {
			if i+j >= s.src.Len() {
				return 0, errors.New("incomplete Unicode escape")
			} else if !isHexDigit(s.src.At(i + j)) {
				return 0, fmt.Errorf("invalid Unicode escape: not a hex digit: %q", s.src.At(i+j))
			}
		}
		return 5, nil
	default:
		return 0, fmt.Errorf("invalid %q after escape", ch)
	}
}

func (s *Scanner) scanNumber() error {
	i := s.pos
	if s.src.At(i) == '-' {
		i++ // if there is a leading sign, we need at least one digit
	}
	nd := s.digitsAt(i)
	if nd == 0 {
		return s.failf(i, "want digit")
	}

	// Check for extra leading zeroes, which JSON does not allow.
	// That is: 0.12 is OK, 01.2 is not.
	if s.src.At(i) == '0' && nd > 1 {
		return s.failf(i, "extra leading zeroes")
	}
	i += nd
	s.tok = Integer

	// If a decimal point follows, consume a fractional part.
	if i < s.src.Len() && s.src.At(i) == '.' {
		nf := s.digitsAt(i + 1)
		if nf == 0 {
			return s.failf(i+1, "no digits after decimal point")
		}
		i += 1 + nf
		s.tok = Number
	}

	// If an exponent follows, consume it.
	if i < s.src.Len() && (s.src.At(i) == 'e' || s.src.At(i) == 'E') {
		i++
		if i < s.src.Len() && (s.src.At(i) == '+' || s.src.At(i) == '-') {
			i++
		}
		ne := s.digitsAt(i)
		if ne == 0 {
			return s.failf(i, "missing exponent digits")
		}
		i += ne
		s.tok = Number
	}
	s.end = i
	return nil
}

func (s *Scanner) scanComment() error {
	i := s.pos + 1
	if i >= s.src.Len() {
		return s.failf(i, "incomplete comment")
	}
	switch s.src.At(i) {
	case '/': // line comment to LF, inclusive
		rest := s.src.SliceFrom(i)
		if n := mem.IndexByte(rest, '\n'); n >= 0 {
			s.end = i + n + 1
		} else {
			s.end = s.src.Len()
		}
		s.tok = LineComment
		return nil

	case '*': // block comment
		for j := i + 1; j+1 < s.src.Len(); j++ {
			if s.src.At(j) == '*' && s.src.At(j+1) == '/' {
				s.end = j + 2
				s.tok = BlockComment
				return nil
			}
		}
		return s.failf(s.src.Len(), "unterminated block comment")

	default:
		return s.failf(i, "invalid %q in comment", s.src.At(i))
	}
}

func (s *Scanner) scanConstant(tok Token, want string) error {
	i := s.pos
	for i < s.src.Len() && isNameByte(s.src.At(i)) {
		i++
	}
	if got := s.src.Slice(s.pos, i); !got.EqualString(want) {
		return s.failf(s.pos, "unknown constant %q", got.StringCopy())
	}
	s.end = i
	s.tok = tok
	return nil
}

// digitsAt reports the number of consecutive decimal digits starting at i.
func (s *Scanner) digitsAt(i int) int {
	n := 0
	for i+n < s.src.Len() && isDigit(s.src.At(i+n)) {
		n++
	}
	return n
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(pos int, msg string, args ...any) error {
	s.end = pos
	return s.setErr(posError{pos, fmt.Errorf(msg, args...)})
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
