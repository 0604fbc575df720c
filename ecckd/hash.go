package ecckd

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
)

// hmacSHA512Split computes I = HMAC-SHA512(key, data) and returns its left
// and right 32-byte halves, I_L and I_R, as used throughout BIP-32 for both
// master key generation and child key derivation.
func hmacSHA512Split(key, data []byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// sha256Sum returns the SHA-256 digest of data.
func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// doubleSHA256 returns SHA-256(SHA-256(data)).
func doubleSHA256(data []byte) []byte {
	return sha256Sum(sha256Sum(data))
}

// checksum returns the first 4 bytes of doubleSHA256(data), the trailing
// tag appended by Base58Check.
func checksum(data []byte) []byte {
	return doubleSHA256(data)[:4]
}
