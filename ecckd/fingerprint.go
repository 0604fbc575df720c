package ecckd

// fingerprint returns the 4-byte parent fingerprint used in a child's
// ParentFingerprint field: the first 4 bytes of SHA-256(compressedPubKey).
//
// The canonical BIP-32 fingerprint is HASH160 (RIPEMD-160(SHA-256(pubkey))).
// This implementation intentionally reproduces the source it was ported
// from, which truncates SHA-256 alone — see the Open Question in the
// design notes. Keys derived and round-tripped within this package are
// unaffected; fingerprints will not match an interoperating BIP-32 wallet
// at depth >= 1.
func fingerprint(compressedPubKey []byte) [4]byte {
	var fp [4]byte
	copy(fp[:], sha256Sum(compressedPubKey))
	return fp
}
