// Package codec converts petcode messages between their in-memory form and
// the shareable representations: canonical protobuf binary, gzip-compressed
// binary, base64 share codes and an ordered key/value mapping.
//
// All functions are pure and safe for concurrent use.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/seerbp/petcode/internal/petcode"
)

const (
	// DefaultCompressionLevel matches the level used by existing share-code
	// producers.
	DefaultCompressionLevel = gzip.BestSpeed
	// DefaultMaxDecodedSize bounds the decompressed payload size.
	DefaultMaxDecodedSize = 1 << 20
)

// ErrTooLarge is wrapped by the DecodeError returned when a decompressed
// payload exceeds the configured maximum size.
var ErrTooLarge = errors.New("decompressed payload exceeds size limit")

// Codec performs the compressed and base64 conversions. The zero value is not
// usable; construct one with New. A Codec is immutable.
type Codec struct {
	level          int
	maxDecodedSize int
}

// Option configures a Codec.
type Option func(*Codec)

// WithCompressionLevel sets the gzip level, from gzip.HuffmanOnly to
// gzip.BestCompression.
func WithCompressionLevel(level int) Option {
	return func(c *Codec) { c.level = level }
}

// WithMaxDecodedSize sets the largest decompressed payload accepted.
func WithMaxDecodedSize(n int) Option {
	return func(c *Codec) { c.maxDecodedSize = n }
}

// New builds a Codec.
//
// Postcondition: Returns an error for an out-of-range level or a
// non-positive size limit.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{level: DefaultCompressionLevel, maxDecodedSize: DefaultMaxDecodedSize}
	for _, opt := range opts {
		opt(c)
	}
	if c.level < gzip.HuffmanOnly || c.level > gzip.BestCompression {
		return nil, fmt.Errorf("codec: compression level must be %d..%d, got %d",
			gzip.HuffmanOnly, gzip.BestCompression, c.level)
	}
	if c.maxDecodedSize <= 0 {
		return nil, fmt.Errorf("codec: max decoded size must be > 0, got %d", c.maxDecodedSize)
	}
	return c, nil
}

// Default is the Codec used by the package-level functions.
var Default = func() *Codec {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}()

// ToCompressedBinary serializes m and gzips the result.
func (c *Codec) ToCompressedBinary(m *petcode.Message) ([]byte, error) {
	raw := MarshalBinary(m)
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("codec: creating gzip writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("codec: compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("codec: compressing: %w", err)
	}
	return buf.Bytes(), nil
}

// FromCompressedBinary is the inverse of ToCompressedBinary.
//
// Postcondition: Returns a *petcode.DecodeError when b is not valid gzip,
// inflates beyond the size limit, or does not hold a well-formed message.
func (c *Codec) FromCompressedBinary(b []byte) (*petcode.Message, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatGzip, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, int64(c.maxDecodedSize)+1))
	if err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatGzip, err)
	}
	if len(raw) > c.maxDecodedSize {
		return nil, petcode.NewDecodeError(petcode.FormatGzip,
			fmt.Errorf("%w (%d bytes)", ErrTooLarge, c.maxDecodedSize))
	}
	return UnmarshalBinary(raw)
}

// ToBase64 returns the share code for m: standard-alphabet, padded base64 of
// ToCompressedBinary(m).
func (c *Codec) ToBase64(m *petcode.Message) (string, error) {
	b, err := c.ToCompressedBinary(m)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// FromBase64 decodes a share code. Leading and trailing whitespace is ignored.
//
// Postcondition: Returns a *petcode.DecodeError for invalid base64 or any
// failure of FromCompressedBinary.
func (c *Codec) FromBase64(code string) (*petcode.Message, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatBase64, err)
	}
	return c.FromCompressedBinary(b)
}

// ToCompressedBinary calls Default.ToCompressedBinary.
func ToCompressedBinary(m *petcode.Message) ([]byte, error) { return Default.ToCompressedBinary(m) }

// FromCompressedBinary calls Default.FromCompressedBinary.
func FromCompressedBinary(b []byte) (*petcode.Message, error) {
	return Default.FromCompressedBinary(b)
}

// ToBase64 calls Default.ToBase64.
func ToBase64(m *petcode.Message) (string, error) { return Default.ToBase64(m) }

// FromBase64 calls Default.FromBase64.
func FromBase64(code string) (*petcode.Message, error) { return Default.FromBase64(code) }
