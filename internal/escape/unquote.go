// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unquoting of JSON strings and escaping of JSON
// Pointer reference tokens.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes the body of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes and unpaired surrogates are replaced by the Unicode replacement
// rune. Unquote reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		var n int
		switch c := src.At(0); c {
		case '"', '\\', '/':
			dec, n = append(dec, c), 1
		case 'b':
			dec, n = append(dec, '\b'), 1
		case 'f':
			dec, n = append(dec, '\f'), 1
		case 'n':
			dec, n = append(dec, '\n'), 1
		case 'r':
			dec, n = append(dec, '\r'), 1
		case 't':
			dec, n = append(dec, '\t'), 1
		case 'u':
			r, m, err := decodeUnicode(src)
			if err != nil {
				return nil, err
			}
			dec, n = utf8.AppendRune(dec, r), m
		default:
			_, m := mem.DecodeRune(src)
			dec, n = utf8.AppendRune(dec, utf8.RuneError), max(m, 1)
		}
		src = src.SliceFrom(n)
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

// decodeUnicode decodes a \u escape starting at the "u" in src, combining a
// UTF-16 surrogate pair if one is present. It returns the rune and the number
// of bytes consumed.
func decodeUnicode(src mem.RO) (rune, int, error) {
	if src.Len() < 5 {
		return 0, 0, errors.New("incomplete Unicode escape")
	}
	v, ok := parseHex(src.Slice(1, 5))
	if !ok {
		return utf8.RuneError, 5, nil
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 5, nil
	}
	if src.Len() >= 11 && src.At(5) == '\\' && src.At(6) == 'u' {
		if w, ok := parseHex(src.Slice(7, 11)); ok {
			if p := utf16.DecodeRune(r, rune(w)); p != utf8.RuneError {
				return p, 11, nil
			}
		}
	}
	return utf8.RuneError, 5, nil
}

func parseHex(data mem.RO) (int64, bool) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
