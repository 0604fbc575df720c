// Package bip44 implements the structured five-level derivation scheme
// (purpose / coin type / account / change / address index) on top of the
// general path algebra in github.com/ModChain/hdkeys/ecckd.
package bip44

import (
	"fmt"

	"github.com/ModChain/hdkeys/ecckd"
)

// Purpose is the hardened first path level. Purpose.BIP44 (44) is the only
// well-known constant; others may be constructed for alternative schemes
// such as BIP-49 or BIP-84.
type Purpose uint32

// BIP44 is the standard BIP-44 purpose value.
const BIP44 Purpose = 44

func (p Purpose) childNumber() ecckd.ChildNumber { return ecckd.Hardened(uint32(p)) }
func (p Purpose) String() string                 { return fmt.Sprintf("%d'", uint32(p)) }

// CoinType is the hardened second path level, identifying the coin per
// SLIP-44.
type CoinType uint32

const (
	Bitcoin        CoinType = 0
	BitcoinTestnet CoinType = 1
	Litecoin       CoinType = 2
	Dogecoin       CoinType = 3
	Ethereum       CoinType = 60
)

func (c CoinType) childNumber() ecckd.ChildNumber { return ecckd.Hardened(uint32(c)) }
func (c CoinType) String() string                 { return fmt.Sprintf("%d'", uint32(c)) }

// AccountLevel is the hardened third path level.
type AccountLevel uint32

func (a AccountLevel) childNumber() ecckd.ChildNumber { return ecckd.Hardened(uint32(a)) }
func (a AccountLevel) String() string                 { return fmt.Sprintf("%d'", uint32(a)) }

// Change is the fourth path level: External addresses receive payments,
// Internal addresses receive change outputs.
type Change uint8

const (
	External Change = 0
	Internal Change = 1
)

func (c Change) childNumber() ecckd.ChildNumber { return ecckd.Normal(uint32(c)) }
func (c Change) String() string                 { return fmt.Sprintf("%d", uint8(c)) }

// AddressIndex is the fifth, non-hardened path level.
type AddressIndex uint32

func (i AddressIndex) childNumber() ecckd.ChildNumber { return ecckd.Normal(uint32(i)) }
func (i AddressIndex) String() string                 { return fmt.Sprintf("%d", uint32(i)) }

// Path is a BIP-44 path: m / purpose' / coin_type' / account' / change /
// address_index.
type Path struct {
	Purpose      Purpose
	CoinType     CoinType
	Account      AccountLevel
	Change       Change
	AddressIndex AddressIndex
}

// New builds a Path with an explicit purpose.
func New(purpose Purpose, coin CoinType, account AccountLevel, change Change, index AddressIndex) Path {
	return Path{Purpose: purpose, CoinType: coin, Account: account, Change: change, AddressIndex: index}
}

// Standard builds a Path with Purpose fixed to BIP44.
func Standard(coin CoinType, account AccountLevel, change Change, index AddressIndex) Path {
	return New(BIP44, coin, account, change, index)
}

// ToPath projects p onto the general path algebra: exactly five child
// numbers, [Hardened(purpose), Hardened(coin), Hardened(account),
// Normal(change), Normal(index)].
func (p Path) ToPath() ecckd.DerivationPath {
	return ecckd.DerivationPath{
		p.Purpose.childNumber(),
		p.CoinType.childNumber(),
		p.Account.childNumber(),
		p.Change.childNumber(),
		p.AddressIndex.childNumber(),
	}
}

// String renders p as m/{purpose}'/{coin}'/{account}'/{change}/{index}.
func (p Path) String() string {
	return fmt.Sprintf("m/%s/%s/%s/%s/%s", p.Purpose, p.CoinType, p.Account, p.Change, p.AddressIndex)
}

// Parse parses a BIP-44 path string, requiring exactly five components with
// positions 0-2 hardened, position 3 normal and in {0, 1}, and position 4
// normal.
func Parse(s string) (Path, error) {
	generic, err := ecckd.ParsePath(s)
	if err != nil {
		return Path{}, err
	}
	if len(generic) != 5 {
		return Path{}, bip44PathErr("path must have exactly 5 components, got %d", len(generic))
	}

	purpose, ok := hardenedComponent(generic[0])
	if !ok {
		return Path{}, bip44PathErr("purpose (position 0) must be hardened")
	}
	coin, ok := hardenedComponent(generic[1])
	if !ok {
		return Path{}, bip44PathErr("coin type (position 1) must be hardened")
	}
	account, ok := hardenedComponent(generic[2])
	if !ok {
		return Path{}, bip44PathErr("account (position 2) must be hardened")
	}

	if generic[3].IsHardened() || generic[3].Index() > 1 {
		return Path{}, bip44PathErr("change (position 3) must be normal and 0 or 1")
	}
	if generic[4].IsHardened() {
		return Path{}, bip44PathErr("address index (position 4) must be normal")
	}

	return Path{
		Purpose:      Purpose(purpose),
		CoinType:     CoinType(coin),
		Account:      AccountLevel(account),
		Change:       Change(generic[3].Index()),
		AddressIndex: AddressIndex(generic[4].Index()),
	}, nil
}

func hardenedComponent(cn ecckd.ChildNumber) (uint32, bool) {
	if !cn.IsHardened() {
		return 0, false
	}
	return cn.Index(), true
}

func bip44PathErr(format string, args ...any) error {
	return &ecckd.Error{Kind: ecckd.KindInvalidDerivationPath, Detail: fmt.Sprintf(format, args...)}
}
