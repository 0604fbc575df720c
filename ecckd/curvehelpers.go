package ecckd

import (
	"math/big"

	"github.com/ModChain/secp256k1"
)

// curve is the secp256k1 group used throughout derivation. All point
// arithmetic is delegated to it; this package never implements its own
// point math. Scalar addition modulo the group order is done with math/big.
func curve() *secp256k1.KoblitzCurve {
	return secp256k1.S256()
}

func curveOrder() *big.Int {
	return curve().Params().N
}

var bigOne = big.NewInt(1)

func isEvenY(y *big.Int) bool {
	return new(big.Int).And(y, bigOne).Sign() == 0
}

// serializeCompressedPoint encodes a curve point (x, y) in the 33-byte
// compressed form 0x02/0x03 || X, as defined for serP in BIP-32.
func serializeCompressedPoint(x, y *big.Int) [33]byte {
	var out [33]byte
	if isEvenY(y) {
		out[0] = secp256k1.PubKeyFormatCompressedEven
	} else {
		out[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	xb := x.Bytes()
	copy(out[1+32-len(xb):], xb)
	return out
}

// asFieldVal converts a big.Int coordinate to the FieldVal representation
// NewPublicKey expects.
func asFieldVal(v *big.Int) *secp256k1.FieldVal {
	fv := new(secp256k1.FieldVal)
	fv.SetByteSlice(v.Bytes())
	return fv
}

// scalarToPoint returns the compressed public key point(k) = k*G for a
// 32-byte big-endian scalar k.
func scalarToPoint(scalar []byte) [33]byte {
	x, y := curve().ScalarBaseMult(scalar)
	return serializeCompressedPoint(x, y)
}

// pointAdd adds a scalar's base-point multiple to an existing compressed
// public key: result = point(scalar) + parent. Used by CKDpub.
func pointAdd(scalar []byte, parentCompressed []byte) ([33]byte, error) {
	ix, iy := curve().ScalarBaseMult(scalar)
	if ix.Sign() == 0 && iy.Sign() == 0 {
		return [33]byte{}, newErr(KindInvalidKey, "derived point is the identity")
	}

	parent, err := secp256k1.ParsePubKey(parentCompressed)
	if err != nil {
		return [33]byte{}, newErrf(KindInvalidKey, "%s", err)
	}

	cx, cy := curve().Add(ix, iy, parent.X(), parent.Y())
	if cx.Sign() == 0 && cy.Sign() == 0 {
		return [33]byte{}, newErr(KindInvalidKey, "derived point is the identity")
	}

	pk := secp256k1.NewPublicKey(asFieldVal(cx), asFieldVal(cy))
	var out [33]byte
	copy(out[:], pk.SerializeCompressed())
	return out, nil
}

// parseScalar interprets b as a big-endian 256-bit scalar and requires it to
// be a valid, non-zero secp256k1 private scalar.
func parseScalar(b []byte) (*big.Int, error) {
	s := new(big.Int).SetBytes(b)
	if s.Sign() == 0 || s.Cmp(curveOrder()) >= 0 {
		return nil, newErr(KindInvalidKey, "scalar out of range")
	}
	return s, nil
}

// scalar32 renders a scalar as a fixed 32-byte big-endian array, left-padded
// with zeros.
func scalar32(s *big.Int) [32]byte {
	var out [32]byte
	b := s.Bytes()
	copy(out[32-len(b):], b)
	return out
}
