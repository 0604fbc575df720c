package ecckd

import (
	"encoding/binary"
	"math/big"
)

// masterSecretKey is the HMAC key used to derive a master node from a seed,
// as fixed by BIP-32.
var masterSecretKey = []byte("Bitcoin seed")

const serializedKeyLen = 78

// ExtendedPrivateKey is a BIP-32 private node: a 256-bit scalar paired with
// its chain code and positional metadata. Values are immutable; every
// derivation produces a new key and leaves the parent untouched.
type ExtendedPrivateKey struct {
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       ChildNumber
	ChainCode         [32]byte
	PrivateKey        [32]byte
	Network           Network
}

// NewMasterKey derives the master extended private key from a seed, per
// BIP-32: I = HMAC-SHA512("Bitcoin seed", seed); I_L is the master scalar,
// I_R the master chain code. Seeds shorter than 16 bytes are rejected.
func NewMasterKey(seed []byte, network Network) (*ExtendedPrivateKey, error) {
	if len(seed) < 16 {
		return nil, newErrf(KindInvalidSeed, "seed must be at least 16 bytes, got %d", len(seed))
	}

	il, ir := hmacSHA512Split(masterSecretKey, seed)
	if _, err := parseScalar(il); err != nil {
		return nil, err
	}

	key := &ExtendedPrivateKey{
		Network: network,
	}
	copy(key.PrivateKey[:], il)
	copy(key.ChainCode[:], ir)
	return key, nil
}

// publicPoint returns the 33-byte compressed public key for k's scalar.
func (k *ExtendedPrivateKey) publicPoint() [33]byte {
	return scalarToPoint(k.PrivateKey[:])
}

// Child derives CKDpriv(k, cn): the child extended private key at the given
// child number. Hardened children hash the parent's private key; normal
// children hash the parent's compressed public key. No recovery is
// attempted if the HMAC output yields an invalid scalar or a zero child
// key — the caller sees KindInvalidKey and must pick a different index.
func (k *ExtendedPrivateKey) Child(cn ChildNumber) (*ExtendedPrivateKey, error) {
	if k.Depth == 0xff {
		return nil, newErr(KindInvalidKey, "maximum derivation depth exceeded")
	}

	data := make([]byte, 0, 37)
	if cn.IsHardened() {
		data = append(data, 0x00)
		data = append(data, k.PrivateKey[:]...)
	} else {
		pub := k.publicPoint()
		data = append(data, pub[:]...)
	}

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], cn.Raw())
	data = append(data, idx[:]...)

	il, ir := hmacSHA512Split(k.ChainCode[:], data)
	ilScalar, err := parseScalar(il)
	if err != nil {
		return nil, err
	}

	childScalar := new(big.Int).Add(ilScalar, new(big.Int).SetBytes(k.PrivateKey[:]))
	childScalar.Mod(childScalar, curveOrder())
	if childScalar.Sign() == 0 {
		return nil, newErr(KindInvalidKey, "derived private key is zero")
	}

	child := &ExtendedPrivateKey{
		Depth:             k.Depth + 1,
		ParentFingerprint: fingerprint(k.publicPoint()[:]),
		ChildNumber:       cn,
		Network:           k.Network,
		PrivateKey:        scalar32(childScalar),
	}
	copy(child.ChainCode[:], ir)
	return child, nil
}

// DerivePath walks CKDpriv across every element of path in order, threading
// the resulting key forward. A failure at any step aborts the whole walk.
func (k *ExtendedPrivateKey) DerivePath(path DerivationPath) (*ExtendedPrivateKey, error) {
	cur := k
	for _, cn := range path {
		next, err := cur.Child(cn)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Public projects k to its extended public key, carrying depth, parent
// fingerprint, child number, chain code, and network unchanged.
func (k *ExtendedPrivateKey) Public() *ExtendedPublicKey {
	pub := &ExtendedPublicKey{
		Depth:             k.Depth,
		ParentFingerprint: k.ParentFingerprint,
		ChildNumber:       k.ChildNumber,
		ChainCode:         k.ChainCode,
		Network:           k.Network,
	}
	pub.PublicKey = k.publicPoint()
	return pub
}

// MarshalBinary encodes k in the canonical 78-byte BIP-32 record:
// version(4) || depth(1) || parent fingerprint(4) || child number(4) ||
// chain code(32) || 0x00 || private key(32).
func (k *ExtendedPrivateKey) MarshalBinary() []byte {
	out := make([]byte, 0, serializedKeyLen)
	ver := k.Network.privateVersion()
	out = append(out, ver[:]...)
	out = append(out, k.Depth)
	out = append(out, k.ParentFingerprint[:]...)

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], k.ChildNumber.Raw())
	out = append(out, idx[:]...)

	out = append(out, k.ChainCode[:]...)
	out = append(out, 0x00)
	out = append(out, k.PrivateKey[:]...)
	return out
}

// String returns the Base58Check encoding of k's 78-byte record.
func (k *ExtendedPrivateKey) String() string {
	return base58CheckEncode(k.MarshalBinary())
}

// ExtendedPrivateKeyFromString parses a Base58Check-encoded extended private
// key, validating its length, version, private-key prefix byte, and scalar
// range.
func ExtendedPrivateKeyFromString(s string) (*ExtendedPrivateKey, error) {
	payload, err := base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	return unmarshalExtendedPrivateKey(payload)
}

func unmarshalExtendedPrivateKey(payload []byte) (*ExtendedPrivateKey, error) {
	if len(payload) != serializedKeyLen {
		return nil, newErrf(KindInvalidExtendedKey, "expected %d bytes, got %d", serializedKeyLen, len(payload))
	}

	var ver version4
	copy(ver[:], payload[0:4])
	network, private, ok := networkFromVersion(ver)
	if !ok {
		return nil, newErr(KindInvalidExtendedKey, "unrecognized version bytes")
	}
	if !private {
		return nil, newErr(KindInvalidExtendedKey, "version bytes denote a public key")
	}

	if payload[45] != 0x00 {
		return nil, newErr(KindInvalidExtendedKey, "private key prefix byte must be 0x00")
	}

	if _, err := parseScalar(payload[46:78]); err != nil {
		return nil, err
	}

	k := &ExtendedPrivateKey{
		Depth:       payload[4],
		Network:     network,
		ChildNumber: childNumberFromRaw(binary.BigEndian.Uint32(payload[9:13])),
	}
	copy(k.ParentFingerprint[:], payload[5:9])
	copy(k.ChainCode[:], payload[13:45])
	copy(k.PrivateKey[:], payload[46:78])
	return k, nil
}
