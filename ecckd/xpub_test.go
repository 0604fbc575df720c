package ecckd

import (
	"encoding/hex"
	"testing"
)

// Public projection commutes with non-hardened derivation: deriving a
// child privately then projecting to public must equal projecting to
// public first then deriving the same child publicly.
func TestPublicDerivationCommutesWithPrivate(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed, Mainnet)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	privChild, err := master.Child(Normal(0))
	if err != nil {
		t.Fatalf("private Child(0): %v", err)
	}

	pubChild, err := master.Public().Child(Normal(0))
	if err != nil {
		t.Fatalf("public Child(0): %v", err)
	}

	if privChild.Public().PublicKey != pubChild.PublicKey {
		t.Fatal("public key mismatch between private-then-project and project-then-public derivation")
	}
	if privChild.ChainCode != pubChild.ChainCode {
		t.Fatal("chain code mismatch between private-then-project and project-then-public derivation")
	}
	if privChild.Public().String() != pubChild.String() {
		t.Fatalf("serialized mismatch: %s vs %s", privChild.Public().String(), pubChild.String())
	}
}

// Hardened derivation is rejected from a public parent, leaving its key
// material untouched.
func TestHardenedDerivationRejectedFromPublic(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed, Mainnet)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	_, err = master.Public().Child(Hardened(0))
	if err == nil {
		t.Fatal("expected error deriving hardened child from public key")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindHardenedDerivationRequiresPrivateKey {
		t.Fatalf("expected KindHardenedDerivationRequiresPrivateKey, got %v", err)
	}
}

func TestPublicDerivePathStopsAtFirstHardened(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed, Mainnet)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	_, err = master.Public().DerivePath(DerivationPath{Normal(0), Hardened(1)})
	if err == nil {
		t.Fatal("expected error on hardened element")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindHardenedDerivationRequiresPrivateKey {
		t.Fatalf("expected KindHardenedDerivationRequiresPrivateKey, got %v", err)
	}
}

// Public-from-public derivation from the BIP-32 test vector 1 master xpub,
// chain m/0/1/2/2/1000000000. The expected key carries this package's
// SHA-256 parent fingerprint (see fingerprint.go), not HASH160.
func TestPublicChainDerivation(t *testing.T) {
	master, err := ExtendedPublicKeyFromString("xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8")
	if err != nil {
		t.Fatalf("ExtendedPublicKeyFromString: %v", err)
	}

	child, err := master.DerivePath(DerivationPath{Normal(0), Normal(1), Normal(2), Normal(2), Normal(1000000000)})
	if err != nil {
		t.Fatalf("DerivePath: %v", err)
	}

	want := "xpub6GFvwURbDVxaeMT5D1BLq7M6qqZSsdhnN7xH9q6ZeKjjJmjRUFVPtfQuejQ1hQy5H7NYKLP7yiQeeuYjxkqLvviTUUQWqodBHwpVJSghSPn"
	if got := child.String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestExtendedPublicKeyRejectsPrivateVersion(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, _ := NewMasterKey(seed, Mainnet)

	if _, err := ExtendedPublicKeyFromString(master.String()); err == nil {
		t.Fatal("expected error parsing an xprv as an xpub")
	}
}
