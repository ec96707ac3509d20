// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package feature

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// Number is the representation of JSON numbers in decoded values.
type Number = json.Number

// DecodeOptions control the syntax accepted by Decode. A nil *DecodeOptions
// is valid and selects strict JSON.
type DecodeOptions struct {
	// Accept comments and trailing commas (JWCC).
	AllowComments bool
}

// Decode parses text as a single JSON value. Objects decode as
// map[string]any, arrays as []any, and numbers as Number so that no
// precision is lost before a rule inspects them. Decode reports an error if
// text is malformed or contains anything but whitespace after the value.
func Decode(text []byte, opts *DecodeOptions) (any, error) {
	if opts != nil && opts.AllowComments {
		std, err := hujson.Standardize(bytes.Clone(text))
		if err != nil {
			return nil, fmt.Errorf("standardize: %w", err)
		}
		text = std
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode: extra input after value")
	}
	return v, nil
}

// DecodeDocument is a convenience wrapper that decodes text and classifies
// the result. It returns nil without error if text is valid JSON but not a
// Feature or FeatureCollection.
func DecodeDocument(text []byte, opts *DecodeOptions) (*Document, error) {
	v, err := Decode(text, opts)
	if err != nil {
		return nil, err
	}
	return Classify(v), nil
}
