// Package codec implements the unpadded base64url encoding defined in
// RFC 4648 section 5: the standard base64 alphabet with - substituted
// for + and _ for /, and no trailing = padding. Encoded text is safe to
// embed in URLs and filenames without escaping.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned by Decode when the input is not valid
// unpadded base64url: a character outside the alphabet, or a length
// that leaves a remainder of 1 modulo 4.
var ErrInvalidEncoding = errors.New("invalid base64url encoding")

// Encoder turns raw bytes into their encoded text form.
type Encoder interface {
	Encode(in []byte) ([]byte, error)
}

// Decoder turns encoded text back into the raw bytes it was built from.
type Decoder interface {
	Decode(in []byte) ([]byte, error)
}

// Encode returns the unpadded base64url encoding of src. It never
// fails; empty input yields empty output.
func Encode(src []byte) []byte {
	dst := make([]byte, base64.RawURLEncoding.EncodedLen(len(src)))
	base64.RawURLEncoding.Encode(dst, src)
	return dst
}

// Decode is the exact left inverse of Encode. The final group of 2 or 3
// characters is decoded without padding; src must contain only alphabet
// characters, so callers strip any surrounding whitespace first. Line
// breaks are checked up front because the stdlib decoder skips them,
// and strict mode rejects a final symbol with non-zero trailing bits
// so every encoded text has exactly one decoding.
func Decode(src []byte) ([]byte, error) {
	if bytes.ContainsAny(src, "\r\n") {
		return nil, fmt.Errorf("%w: embedded line break", ErrInvalidEncoding)
	}

	dst := make([]byte, base64.RawURLEncoding.DecodedLen(len(src)))
	n, err := base64.RawURLEncoding.Strict().Decode(dst, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return dst[:n], nil
}

// URLCodec implements Encoder and Decoder with the package-level
// Encode and Decode functions.
type URLCodec struct{}

func (URLCodec) Encode(in []byte) ([]byte, error) {
	return Encode(in), nil
}

func (URLCodec) Decode(in []byte) ([]byte, error) {
	return Decode(in)
}
