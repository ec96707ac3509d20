// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"errors"

	"github.com/creachadair/jsonfg/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string token.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) (string, error) {
	n := src.Len()
	if n < 2 || src.At(0) != '"' || src.At(n-1) != '"' {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(src.Slice(1, n-1))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
