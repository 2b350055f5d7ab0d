package bip32

import "strconv"

// HardenedKeyStart is the first raw index of a hardened key.
const HardenedKeyStart uint32 = 0x80000000 // 2^31

// KeyIndex is the index of a child key. A normal index is below HardenedKeyStart, a
// hardened index is HardenedKeyStart or above. The zero value is the normal index 0.
type KeyIndex struct {
	index    uint32
	hardened bool
}

// NewKeyIndex returns the normal index i. Raw values at or above HardenedKeyStart are
// rejected: hardened indexes are only built through NewHardenedKeyIndex.
func NewKeyIndex(i uint32) (KeyIndex, error) {
	if i >= HardenedKeyStart {
		return KeyIndex{}, &KeyIndexOutOfRangeError{Index: uint64(i)}
	}
	return KeyIndex{index: i}, nil
}

// NewHardenedKeyIndex returns the hardened index for the normalized value i, i.e. the raw
// index i + 2^31.
func NewHardenedKeyIndex(i uint32) (KeyIndex, error) {
	if i >= HardenedKeyStart {
		return KeyIndex{}, &KeyIndexOutOfRangeError{Index: uint64(i), Hardened: true}
	}
	return KeyIndex{index: i + HardenedKeyStart, hardened: true}, nil
}

// IsValid reports whether the raw index is in the range of its kind.
func (k KeyIndex) IsValid() bool {
	if k.hardened {
		return k.index >= HardenedKeyStart
	}
	return k.index < HardenedKeyStart
}

// IsHardened reports whether this is a hardened index.
func (k KeyIndex) IsHardened() bool {
	return k.hardened
}

// Index returns the raw index, as serialized into the derivation hash.
func (k KeyIndex) Index() uint32 {
	return k.index
}

// NormalizedIndex returns the index with the hardened offset removed.
func (k KeyIndex) NormalizedIndex() uint32 {
	if k.hardened {
		return k.index - HardenedKeyStart
	}
	return k.index
}

// String returns the index as it is written in a chain path.
func (k KeyIndex) String() string {
	if k.hardened {
		return strconv.FormatUint(uint64(k.NormalizedIndex()), 10) + hardenedSymbol
	}
	return strconv.FormatUint(uint64(k.index), 10)
}

func (k KeyIndex) outOfRangeError() error {
	return &KeyIndexOutOfRangeError{Index: uint64(k.index), Hardened: k.hardened}
}
