package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"threshold.network/frost-ecgfp5/frost/ecgfp5"
	"threshold.network/frost-ecgfp5/frost/keys"
)

func newKeygenCmd() *cobra.Command {
	var groupSize, threshold int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Runs trusted-dealer key generation and prints the group's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphersuite := ecgfp5.New()

			shares, publicKeyPackage, err := keys.GenerateWithDealer(ciphersuite, groupSize, threshold, nil, rand.Reader)
			if err != nil {
				return fmt.Errorf("dealer key generation failed: %w", err)
			}

			curve := ciphersuite.Curve()
			fmt.Printf(
				"generated %d shares (threshold %d) for group public key %x\n",
				len(shares), threshold, curve.SerializePoint(publicKeyPackage.VerifyingKey),
			)

			for id, share := range shares {
				if err := keys.VerifySecretShare(ciphersuite, share); err != nil {
					return fmt.Errorf("participant [%d]'s share failed verification: %w", id, err)
				}
			}
			fmt.Println("every share verified against the dealer's Feldman commitment")

			return nil
		},
	}

	cmd.Flags().IntVar(&groupSize, "group-size", 5, "total number of signers")
	cmd.Flags().IntVar(&threshold, "threshold", 3, "number of signers required to sign")

	return cmd
}
