package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	masterSymbol      = "m"
	hardenedSymbol    = "'"
	hardenedSymbolAlt = "H"
	separator         = "/"
)

// SubPathKind tells a root step from a child step.
type SubPathKind uint8

// SubPathKind values.
const (
	SubPathRoot SubPathKind = iota
	SubPathChild
)

// SubPath is a single step of a chain path.
type SubPath struct {
	Kind SubPathKind
	// KeyIndex is set for SubPathChild steps only.
	KeyIndex KeyIndex
}

// RootSubPath is the step denoted by the master symbol.
func RootSubPath() SubPath {
	return SubPath{Kind: SubPathRoot}
}

// ChildSubPath is a step to the child at keyIndex.
func ChildSubPath(keyIndex KeyIndex) SubPath {
	return SubPath{Kind: SubPathChild, KeyIndex: keyIndex}
}

// IsRoot reports whether the step is the master symbol.
func (s SubPath) IsRoot() bool {
	return s.Kind == SubPathRoot
}

func (s SubPath) String() string {
	if s.IsRoot() {
		return masterSymbol
	}
	return s.KeyIndex.String()
}

// ChainPath is a textual derivation path such as m/0/1 or m/44'/0H. The string is the
// only state: every call to Iter parses it again.
type ChainPath struct {
	path string
}

// NewChainPath wraps path. Validation happens while iterating.
func NewChainPath(path string) ChainPath {
	return ChainPath{path: path}
}

// String returns the path as given.
func (p ChainPath) String() string {
	return p.path
}

// Iter returns a new iterator over the steps of the path, from the root to the last child.
func (p ChainPath) Iter() *ChainPathIterator {
	return &ChainPathIterator{remaining: p.path}
}

// SubPaths parses the whole path.
func (p ChainPath) SubPaths() ([]SubPath, error) {
	var subPaths []SubPath
	iterator := p.Iter()
	for iterator.Next() {
		subPaths = append(subPaths, iterator.SubPath())
	}
	if err := iterator.Err(); err != nil {
		return nil, err
	}
	return subPaths, nil
}

// ChainPathIterator parses a chain path one segment at a time. It stops at the first
// segment that fails to parse:
//
//	iterator := path.Iter()
//	for iterator.Next() {
//		subPath := iterator.SubPath()
//	}
//	if err := iterator.Err(); err != nil {
//		return err
//	}
type ChainPathIterator struct {
	remaining string
	position  int
	finished  bool
	subPath   SubPath
	err       error
}

// Next parses the next segment. It returns false when the path is exhausted or a segment
// failed to parse, in which case Err returns the failure.
func (it *ChainPathIterator) Next() bool {
	if it.finished {
		return false
	}

	segment := it.remaining
	separatorIndex := strings.Index(it.remaining, separator)
	if separatorIndex < 0 {
		it.finished = true
	} else {
		segment = it.remaining[:separatorIndex]
		it.remaining = it.remaining[separatorIndex+len(separator):]
	}

	position := it.position
	it.position++

	subPath, err := parseSegment(segment)
	if err != nil {
		it.finished = true
		it.err = &ChainPathError{Segment: segment, Position: position, Err: err}
		return false
	}

	it.subPath = subPath
	return true
}

// SubPath returns the step parsed by the last successful call to Next.
func (it *ChainPathIterator) SubPath() SubPath {
	return it.subPath
}

// Position returns the number of segments consumed so far.
func (it *ChainPathIterator) Position() int {
	return it.position
}

// Err returns the parse error that stopped the iteration, if any.
func (it *ChainPathIterator) Err() error {
	return it.err
}

func parseSegment(segment string) (SubPath, error) {
	if segment == masterSymbol {
		return RootSubPath(), nil
	}
	if segment == "" {
		return SubPath{}, ErrBlankPath
	}

	digits := segment
	isHardened := strings.HasSuffix(segment, hardenedSymbol) || strings.HasSuffix(segment, hardenedSymbolAlt)
	if isHardened {
		digits = segment[:len(segment)-1]
	}
	if !isDecimal(digits) {
		return SubPath{}, ErrInvalidPath
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return SubPath{}, ErrInvalidPath
	}
	if err != nil || value >= uint64(HardenedKeyStart) {
		return SubPath{}, &KeyIndexOutOfRangeError{Index: value, Hardened: isHardened}
	}

	var keyIndex KeyIndex
	if isHardened {
		keyIndex, err = NewHardenedKeyIndex(uint32(value))
	} else {
		keyIndex, err = NewKeyIndex(uint32(value))
	}
	if err != nil {
		return SubPath{}, err
	}
	return ChildSubPath(keyIndex), nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
