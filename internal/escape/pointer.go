// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import "strings"

var (
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Token encodes a member name as a JSON Pointer reference token, per RFC 6901
// section 3: "~" becomes "~0" and "/" becomes "~1".
func Token(name string) string {
	if !strings.ContainsAny(name, "~/") {
		return name
	}
	return tokenEscaper.Replace(name)
}

// Untoken decodes a JSON Pointer reference token. A "~" not followed by "0"
// or "1" is left as-is.
func Untoken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	return tokenUnescaper.Replace(tok)
}
