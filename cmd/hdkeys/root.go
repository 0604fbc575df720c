// Command hdkeys is a small demo CLI around the ecckd and bip44 packages.
// It is not part of the library's contract: it exists to exercise the
// derivation engine end to end, from a freshly generated mnemonic down to a
// derived extended key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hdkeys",
	Short: "Derive BIP-32/BIP-44 hierarchical deterministic keys",
	Long: `hdkeys is a demo command-line tool for the hdkeys derivation engine.

It can generate a BIP-39 mnemonic, derive a master key from a seed, and walk
an arbitrary or BIP-44-structured path down to a child extended key.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("testnet", false, "use testnet key versions")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(deriveCmd)
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hdkeys:", err)
		os.Exit(1)
	}
}
