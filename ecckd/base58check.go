package ecckd

import (
	"bytes"

	"github.com/ModChain/base58"
)

// base58CheckEncode emits Base58(payload || checksum(payload)).
func base58CheckEncode(payload []byte) string {
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum(payload)...)
	return base58.Bitcoin.Encode(full)
}

// base58CheckDecode reverses base58CheckEncode, verifying the trailing
// 4-byte checksum and returning the payload without it.
func base58CheckDecode(s string) ([]byte, error) {
	raw, err := base58.Bitcoin.Decode(s)
	if err != nil {
		return nil, newErrf(KindBase58Decode, "%s", err)
	}
	if len(raw) < 4 {
		return nil, newErr(KindInvalidChecksum, "payload shorter than checksum")
	}

	split := len(raw) - 4
	payload, want := raw[:split], raw[split:]
	if !bytes.Equal(checksum(payload), want) {
		return nil, newErr(KindInvalidChecksum, "checksum mismatch")
	}
	return payload, nil
}
