package bip32

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidPath is returned for a chain path segment that is not a numeral with an
	// optional hardened marker, and for a root marker anywhere but the start of a path.
	ErrInvalidPath = errors.New("invalid chain path")

	// ErrBlankPath is returned for an empty chain path segment.
	ErrBlankPath = errors.New("blank chain path segment")

	// ErrKeyIndexOutOfRange is matched by every *KeyIndexOutOfRangeError.
	ErrKeyIndexOutOfRange = errors.New("key index out of range")

	// ErrInvalidKeyLength is returned when decoding a key of the wrong size.
	ErrInvalidKeyLength = errors.New("invalid serialized key length")

	// ErrChecksumMismatch is returned when an encoded extended key fails its checksum.
	ErrChecksumMismatch = errors.New("extended key checksum mismatch")

	// ErrInvalidPadding is returned when the byte before an encoded private key is not zero.
	ErrInvalidPadding = errors.New("invalid private key padding")

	// ErrUnknownVersion is returned for a version with no known public counterpart.
	ErrUnknownVersion = errors.New("unknown extended key version")
)

// ChainPathError describes the chain path segment that failed to parse.
type ChainPathError struct {
	// Segment is the offending segment text.
	Segment string
	// Position is the zero-based position of the segment in the path.
	Position int
	// Err is ErrInvalidPath, ErrBlankPath or a *KeyIndexOutOfRangeError.
	Err error
}

func (e *ChainPathError) Error() string {
	return fmt.Sprintf("chain path segment %d (%q): %s", e.Position, e.Segment, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *ChainPathError) Unwrap() error {
	return e.Err
}

// KeyIndexOutOfRangeError is returned when a raw index does not fit the range of the
// requested kind of key index, or when a key index is used where its kind is not allowed.
type KeyIndexOutOfRangeError struct {
	// Index is the raw value that caused the error.
	Index uint64
	// Hardened is set when the value was meant as a hardened index.
	Hardened bool
}

func (e *KeyIndexOutOfRangeError) Error() string {
	kind := "normal"
	if e.Hardened {
		kind = "hardened"
	}
	return fmt.Sprintf("%s: %d is not a valid %s index", ErrKeyIndexOutOfRange, e.Index, kind)
}

// Is makes errors.Is(err, ErrKeyIndexOutOfRange) hold.
func (e *KeyIndexOutOfRangeError) Is(target error) bool {
	return target == ErrKeyIndexOutOfRange
}

// CurveError wraps a failure reported by the curve provider.
type CurveError struct {
	// Operation names the curve operation that failed.
	Operation string
	Err       error
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("curve error in %s: %s", e.Operation, e.Err)
}

// Unwrap returns the provider's error.
func (e *CurveError) Unwrap() error {
	return e.Err
}

func newCurveError(operation string, err error) error {
	return &CurveError{Operation: operation, Err: err}
}
