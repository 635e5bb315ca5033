// Command frost-demo drives a full [FROST] round in a single process: a
// trusted dealer splits a fresh group key, a threshold of signers commit
// and produce signature shares, and a coordinator aggregates them into a
// single Schnorr signature, the same keygen/sign flow the teacher's
// protocol.go RunKeygen demo exercised against the root package, rewired
// here against the frost/ecgfp5 and frost/keys packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "frost-demo",
		Short: "Demonstrates FROST threshold Schnorr signing over ecGFp5",
	}

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newSignCmd())

	return root
}
