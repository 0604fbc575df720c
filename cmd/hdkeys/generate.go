package main

import (
	"fmt"

	"github.com/ModChain/hdkeys/ecckd"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new mnemonic and its master extended key",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int("strength", 256, "entropy strength in bits (128, 160, 192, 224, or 256)")
	generateCmd.Flags().String("passphrase", "", "optional BIP-39 passphrase")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	strength, _ := cmd.Flags().GetInt("strength")
	passphrase, _ := cmd.Flags().GetString("passphrase")
	testnet, _ := cmd.Flags().GetBool("testnet")

	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return fmt.Errorf("generate mnemonic: %w", err)
	}

	seed := bip39.NewSeed(mnemonic, passphrase)

	network := ecckd.Mainnet
	if testnet {
		network = ecckd.Testnet
	}

	master, err := ecckd.NewMasterKey(seed, network)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}

	fmt.Println("mnemonic:", mnemonic)
	fmt.Println("xprv:", master.String())
	fmt.Println("xpub:", master.Public().String())
	return nil
}
