package codec

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"hello", []byte("hello"), "aGVsbG8"},
		{"hello with newline", []byte("hello\n"), "aGVsbG8K"},
		{"two names", []byte("John Doe"), "Sm9obiBEb2U"},
		{"url-safe alphabet", []byte{0xF0, 0x9F, 0x8D, 0xA3}, "8J-Now"},
		{"one byte", []byte{0xFF}, "_w"},
		{"two bytes", []byte{0xFF, 0xEF}, "_-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(Encode(tt.raw)))
		})
	}
}

func TestEncodeAlphabetClosure(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}

	for _, c := range Encode(raw) {
		valid := c >= 'A' && c <= 'Z' ||
			c >= 'a' && c <= 'z' ||
			c >= '0' && c <= '9' ||
			c == '-' || c == '_'
		require.Truef(t, valid, "character %q outside the url-safe alphabet", c)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    []byte
	}{
		{"empty", "", []byte{}},
		{"hello", "aGVsbG8", []byte("hello")},
		{"hello with newline", "aGVsbG8K", []byte("hello\n")},
		{"url-safe alphabet", "8J-Now", []byte{0xF0, 0x9F, 0x8D, 0xA3}},
		{"final group of two", "_w", []byte{0xFF}},
		{"final group of three", "_-8", []byte{0xFF, 0xEF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.encoded))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"length 1 mod 4", "a"},
		{"length 5", "aGVsb"},
		{"disallowed character", "a!b2"},
		{"standard alphabet plus", "a+b2"},
		{"standard alphabet slash", "a/b2"},
		{"padding character", "aGVsbG8="},
		{"embedded whitespace", "aGVs bG8"},
		{"embedded newline", "aGVs\nbG8"},
		{"embedded carriage return", "aGVs\rbG8"},
		{"trailing newline", "aGVsbG8\n"},
		{"non-canonical final symbol", "aGVsbG9"},
		{"non-canonical final group of two", "_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.encoded))
			require.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Cover all input lengths mod 3, plus a random buffer.
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 1024} {
		raw := make([]byte, n)
		_, err := rand.Read(raw)
		require.NoError(t, err)

		got, err := Decode(Encode(raw))
		require.NoError(t, err)
		require.Equal(t, raw, got)
	}
}

func TestURLCodec(t *testing.T) {
	var (
		enc Encoder = URLCodec{}
		dec Decoder = URLCodec{}
	)

	encoded, err := enc.Encode([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "aGVsbG8", string(encoded))

	decoded, err := dec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "hello", string(decoded))
}
