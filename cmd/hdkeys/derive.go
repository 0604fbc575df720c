package main

import (
	"fmt"

	"github.com/ModChain/hdkeys/bip44"
	"github.com/ModChain/hdkeys/ecckd"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [mnemonic]",
	Short: "Derive a child extended key from a mnemonic along a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runDerive,
}

func init() {
	deriveCmd.Flags().String("passphrase", "", "optional BIP-39 passphrase")
	deriveCmd.Flags().String("path", "", "arbitrary derivation path, e.g. m/44'/0'/0'/0/0")
	deriveCmd.Flags().Uint32("coin", uint32(bip44.Bitcoin), "SLIP-44 coin type for --bip44 mode")
	deriveCmd.Flags().Uint32("account", 0, "account index for --bip44 mode")
	deriveCmd.Flags().Bool("internal", false, "use the internal (change) chain for --bip44 mode")
	deriveCmd.Flags().Uint32("index", 0, "address index for --bip44 mode")
	deriveCmd.Flags().Bool("bip44", false, "build the path from --coin/--account/--internal/--index instead of --path")
}

func runDerive(cmd *cobra.Command, args []string) error {
	mnemonic := args[0]
	if !bip39.IsMnemonicValid(mnemonic) {
		return fmt.Errorf("invalid mnemonic")
	}

	passphrase, _ := cmd.Flags().GetString("passphrase")
	pathFlag, _ := cmd.Flags().GetString("path")
	useBip44, _ := cmd.Flags().GetBool("bip44")
	testnet, _ := cmd.Flags().GetBool("testnet")

	network := ecckd.Mainnet
	if testnet {
		network = ecckd.Testnet
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	master, err := ecckd.NewMasterKey(seed, network)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}

	var path ecckd.DerivationPath
	switch {
	case useBip44:
		coin, _ := cmd.Flags().GetUint32("coin")
		account, _ := cmd.Flags().GetUint32("account")
		internal, _ := cmd.Flags().GetBool("internal")
		index, _ := cmd.Flags().GetUint32("index")
		change := bip44.External
		if internal {
			change = bip44.Internal
		}
		p := bip44.Standard(bip44.CoinType(coin), bip44.AccountLevel(account), change, bip44.AddressIndex(index))
		fmt.Println("path:", p.String())
		path = p.ToPath()
	case pathFlag != "":
		path, err = ecckd.ParsePath(pathFlag)
		if err != nil {
			return fmt.Errorf("parse path: %w", err)
		}
	default:
		return fmt.Errorf("one of --path or --bip44 is required")
	}

	child, err := master.DerivePath(path)
	if err != nil {
		return fmt.Errorf("derive path: %w", err)
	}

	fmt.Println("xprv:", child.String())
	fmt.Println("xpub:", child.Public().String())
	return nil
}
