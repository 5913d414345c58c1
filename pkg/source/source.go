// Package source resolves the input designator of a single invocation
// to a readable byte stream.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Stdin is the conventional sentinel meaning "read standard input".
const Stdin = "-"

// ErrUnavailable is returned by Open when a named file cannot be
// opened. The underlying filesystem error is included in the message.
var ErrUnavailable = errors.New("source unavailable")

// Source designates where input bytes come from: empty or the Stdin
// sentinel selects standard input, anything else names a file.
type Source string

// IsStdin reports whether s resolves to standard input.
func (s Source) IsStdin() bool {
	return s == "" || s == Stdin
}

// Open resolves s to a byte stream. Standard input is served from the
// given reader so callers can substitute a buffer; the returned handle
// never closes the process's real stdin. Named files are opened for
// reading and owned by the caller, which must close them.
func (s Source) Open(stdin io.Reader) (io.ReadCloser, error) {
	if s.IsStdin() {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(string(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return f, nil
}
