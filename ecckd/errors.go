package ecckd

import "fmt"

// Kind classifies the failure reported by an Error. Every exported operation
// in this package either succeeds or returns an *Error of one of these
// kinds; none of them panic on well-formed input.
type Kind int

const (
	// KindInvalidSeed means a seed shorter than the 16-byte minimum was
	// supplied to NewMasterKey.
	KindInvalidSeed Kind = iota

	// KindInvalidKey means a derived or parsed scalar/point was out of
	// range, zero, or otherwise not a valid curve element.
	KindInvalidKey

	// KindInvalidDerivationPath means a path or child-number string did not
	// parse, or a structured bip44 path failed its positional checks.
	KindInvalidDerivationPath

	// KindInvalidExtendedKey means a serialized extended key had the wrong
	// length, an unrecognized version, or a bad private-key prefix byte.
	KindInvalidExtendedKey

	// KindInvalidChecksum means a Base58Check payload's trailing 4 bytes
	// did not match the recomputed checksum.
	KindInvalidChecksum

	// KindBase58Decode means the input was not valid Base58 at all.
	KindBase58Decode

	// KindHardenedDerivationRequiresPrivateKey means CKDpub was asked to
	// derive a hardened child, which is mathematically impossible without
	// the private key.
	KindHardenedDerivationRequiresPrivateKey
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSeed:
		return "invalid seed"
	case KindInvalidKey:
		return "invalid key"
	case KindInvalidDerivationPath:
		return "invalid derivation path"
	case KindInvalidExtendedKey:
		return "invalid extended key"
	case KindInvalidChecksum:
		return "invalid checksum"
	case KindBase58Decode:
		return "base58 decode error"
	case KindHardenedDerivationRequiresPrivateKey:
		return "hardened derivation requires private key"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every exported operation in this
// package. Detail is optional human-readable context; it may be empty.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newErr(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func newErrf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
