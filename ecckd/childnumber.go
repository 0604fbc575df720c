package ecckd

import (
	"strconv"
	"strings"
)

// HardenedBit is the bit set in a raw 32-bit index to mark a hardened child.
const HardenedBit uint32 = 0x80000000

// MaxNormalIndex is the largest index representable by either variant of
// ChildNumber before it overflows into the hardened range.
const MaxNormalIndex uint32 = 0x7fffffff

// ChildNumber is a tagged child index: either Normal(i) or Hardened(i), for
// i in [0, 2^31-1]. The hardened bit is carried by the tag, never folded
// into the stored index. ParseChildNumber and childNumberFromRaw only
// produce indices <= MaxNormalIndex; Normal and Hardened do not check their
// argument, so a larger value passed to them is stored as given.
type ChildNumber struct {
	index    uint32
	hardened bool
}

// Normal builds a non-hardened child number.
func Normal(i uint32) ChildNumber {
	return ChildNumber{index: i}
}

// Hardened builds a hardened child number.
func Hardened(i uint32) ChildNumber {
	return ChildNumber{index: i, hardened: true}
}

// IsHardened reports whether cn requires the private key to derive.
func (cn ChildNumber) IsHardened() bool {
	return cn.hardened
}

// Index returns the child number's index before hardening is applied. It is
// <= MaxNormalIndex unless an out-of-range value was passed to Normal or
// Hardened.
func (cn ChildNumber) Index() uint32 {
	return cn.index
}

// Raw returns the 32-bit wire representation: index for normal children,
// index+2^31 for hardened ones.
func (cn ChildNumber) Raw() uint32 {
	if cn.hardened {
		return cn.index + HardenedBit
	}
	return cn.index
}

// childNumberFromRaw reconstructs a ChildNumber from its wire index, used
// when deserializing an extended key's ChildNumber field.
func childNumberFromRaw(raw uint32) ChildNumber {
	if raw&HardenedBit != 0 {
		return Hardened(raw &^ HardenedBit)
	}
	return Normal(raw)
}

// String renders the child number in BIP-32 textual form: the decimal index,
// suffixed with ' when hardened.
func (cn ChildNumber) String() string {
	s := strconv.FormatUint(uint64(cn.index), 10)
	if cn.hardened {
		return s + "'"
	}
	return s
}

// ParseChildNumber parses a single path token such as "44'", "0h", or "0".
// A trailing ' or h marks the token hardened; h is accepted only as an
// input alias and is never produced by String.
func ParseChildNumber(token string) (ChildNumber, error) {
	if token == "" {
		return ChildNumber{}, newErr(KindInvalidDerivationPath, "empty path component")
	}

	hardened := false
	body := token
	if last := token[len(token)-1]; last == '\'' || last == 'h' {
		hardened = true
		body = token[:len(token)-1]
	}

	if body == "" || strings.ContainsAny(body, "+-") {
		return ChildNumber{}, newErrf(KindInvalidDerivationPath, "malformed index %q", token)
	}

	i, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return ChildNumber{}, newErrf(KindInvalidDerivationPath, "malformed index %q", token)
	}
	if uint32(i) > MaxNormalIndex {
		return ChildNumber{}, newErrf(KindInvalidDerivationPath, "index %q out of range", token)
	}

	if hardened {
		return Hardened(uint32(i)), nil
	}
	return Normal(uint32(i)), nil
}
