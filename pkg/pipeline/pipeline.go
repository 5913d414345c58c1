// Package pipeline runs one transformation: resolve the input source,
// read it to the end, encode or decode, and write the result.
package pipeline

import (
	"bytes"
	"fmt"
	"io"

	"github.com/b64url/b64url/pkg/codec"
	"github.com/b64url/b64url/pkg/source"
)

// Mode selects the direction of the transformation.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

// Encode reads r to the end and writes the base64url encoding of its
// bytes to w, followed by a single newline. The newline is part of the
// tool's output contract, like base64(1); it is not encoded data.
func Encode(r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if _, err := w.Write(append(codec.Encode(raw), '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Decode reads base64url text from r and writes the decoded bytes to w
// verbatim, with no trailing newline. A single trailing whitespace run
// is stripped before decoding so that piped-in encoder output, which
// ends in a newline, round-trips. Any other whitespace is a decode
// error.
func Decode(r io.Reader, w io.Writer) error {
	encoded, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	raw, err := codec.Decode(bytes.TrimRight(encoded, " \t\r\n"))
	if err != nil {
		return err
	}

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Run resolves src, transforms its contents in the given mode, and
// writes the result to w. Standard input is served from stdin; a file
// handle opened here is closed before Run returns.
func Run(mode Mode, src source.Source, stdin io.Reader, w io.Writer) error {
	r, err := src.Open(stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	if mode == ModeDecode {
		return Decode(r, w)
	}
	return Encode(r, w)
}
