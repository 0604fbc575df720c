package ecckd

import (
	"encoding/binary"

	"github.com/ModChain/secp256k1"
)

// ExtendedPublicKey is a BIP-32 public node: a compressed secp256k1 point
// paired with its chain code and positional metadata, mirroring
// ExtendedPrivateKey's shape with the scalar replaced by a point.
type ExtendedPublicKey struct {
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       ChildNumber
	ChainCode         [32]byte
	PublicKey         [33]byte
	Network           Network
}

// Child derives CKDpub(K, cn): the non-hardened child extended public key
// at the given child number. Hardened indices are rejected outright,
// without touching any key material, since deriving them requires the
// private key.
func (k *ExtendedPublicKey) Child(cn ChildNumber) (*ExtendedPublicKey, error) {
	if cn.IsHardened() {
		return nil, newErr(KindHardenedDerivationRequiresPrivateKey, "")
	}
	if k.Depth == 0xff {
		return nil, newErr(KindInvalidKey, "maximum derivation depth exceeded")
	}

	data := make([]byte, 0, 37)
	data = append(data, k.PublicKey[:]...)

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], cn.Raw())
	data = append(data, idx[:]...)

	il, ir := hmacSHA512Split(k.ChainCode[:], data)
	if _, err := parseScalar(il); err != nil {
		return nil, err
	}

	childPoint, err := pointAdd(il, k.PublicKey[:])
	if err != nil {
		return nil, err
	}

	child := &ExtendedPublicKey{
		Depth:             k.Depth + 1,
		ParentFingerprint: fingerprint(k.PublicKey[:]),
		ChildNumber:       cn,
		Network:           k.Network,
		PublicKey:         childPoint,
	}
	copy(child.ChainCode[:], ir)
	return child, nil
}

// DerivePath walks CKDpub across every element of path in order. The first
// hardened element encountered aborts with
// KindHardenedDerivationRequiresPrivateKey.
func (k *ExtendedPublicKey) DerivePath(path DerivationPath) (*ExtendedPublicKey, error) {
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

// MarshalBinary encodes k in the canonical 78-byte BIP-32 record:
// version(4) || depth(1) || parent fingerprint(4) || child number(4) ||
// chain code(32) || compressed public key(33).
func (k *ExtendedPublicKey) MarshalBinary() []byte {
	out := make([]byte, 0, serializedKeyLen)
	ver := k.Network.publicVersion()
	out = append(out, ver[:]...)
	out = append(out, k.Depth)
	out = append(out, k.ParentFingerprint[:]...)

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], k.ChildNumber.Raw())
	out = append(out, idx[:]...)

	out = append(out, k.ChainCode[:]...)
	out = append(out, k.PublicKey[:]...)
	return out
}

// String returns the Base58Check encoding of k's 78-byte record.
func (k *ExtendedPublicKey) String() string {
	return base58CheckEncode(k.MarshalBinary())
}

// ExtendedPublicKeyFromString parses a Base58Check-encoded extended public
// key, validating its length, version, and that the key data is a point on
// the curve.
func ExtendedPublicKeyFromString(s string) (*ExtendedPublicKey, error) {
	payload, err := base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	return unmarshalExtendedPublicKey(payload)
}

func unmarshalExtendedPublicKey(payload []byte) (*ExtendedPublicKey, error) {
	if len(payload) != serializedKeyLen {
		return nil, newErrf(KindInvalidExtendedKey, "expected %d bytes, got %d", serializedKeyLen, len(payload))
	}

	var ver version4
	copy(ver[:], payload[0:4])
	network, private, ok := networkFromVersion(ver)
	if !ok {
		return nil, newErr(KindInvalidExtendedKey, "unrecognized version bytes")
	}
	if private {
		return nil, newErr(KindInvalidExtendedKey, "version bytes denote a private key")
	}

	keyData := payload[45:78]
	if _, err := secp256k1.ParsePubKey(keyData); err != nil {
		return nil, newErrf(KindInvalidKey, "%s", err)
	}

	k := &ExtendedPublicKey{
		Depth:       payload[4],
		Network:     network,
		ChildNumber: childNumberFromRaw(binary.BigEndian.Uint32(payload[9:13])),
	}
	copy(k.ParentFingerprint[:], payload[5:9])
	copy(k.ChainCode[:], payload[13:45])
	copy(k.PublicKey[:], keyData)
	return k, nil
}
