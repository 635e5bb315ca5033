package main

import (
	"crypto/rand"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/ecgfp5"
	"threshold.network/frost-ecgfp5/frost/keys"
)

func newSignCmd() *cobra.Command {
	var groupSize, threshold int
	var message string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Runs dealer keygen followed by a full two-round FROST signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphersuite := ecgfp5.New()

			shares, publicKeyPackage, err := keys.GenerateWithDealer(ciphersuite, groupSize, threshold, nil, rand.Reader)
			if err != nil {
				return fmt.Errorf("dealer key generation failed: %w", err)
			}

			participating := make([]frost.Identifier, 0, threshold)
			for id := range shares {
				if len(participating) == threshold {
					break
				}
				participating = append(participating, id)
			}
			slices.Sort(participating)

			signers := make(map[frost.Identifier]*frost.Signer, threshold)
			nonces := make(map[frost.Identifier]*frost.SigningNonces, threshold)
			commitments := make([]*frost.SigningCommitments, 0, threshold)

			for _, id := range participating {
				keyPackage := shares[id].IntoKeyPackage(ciphersuite, threshold)
				signer, err := frost.NewSigner(
					ciphersuite, keyPackage.Identifier,
					keyPackage.SigningShare.Value, publicKeyPackage.VerifyingKey,
				)
				if err != nil {
					return fmt.Errorf("participant [%d]: %w", id, err)
				}
				signers[id] = signer

				nonce, commitment, err := frost.Commit(signer)
				if err != nil {
					return fmt.Errorf("participant [%d] round one failed: %w", id, err)
				}
				nonces[id] = nonce
				commitments = append(commitments, commitment)
			}

			msg := []byte(message)
			signingPackage := frost.NewSigningPackage(msg, commitments)

			signatureShares := make([]*frost.SignatureShare, 0, threshold)
			for _, id := range participating {
				share, err := frost.Sign(signers[id], nonces[id], signingPackage)
				if err != nil {
					return fmt.Errorf("participant [%d] round two failed: %w", id, err)
				}
				signatureShares = append(signatureShares, share)
				nonces[id].Zeroize()
			}

			verifyingShares := make(map[frost.Identifier]*frost.Point, len(publicKeyPackage.VerifyingShares))
			for id, share := range publicKeyPackage.VerifyingShares {
				verifyingShares[id] = share.Value
			}

			coordinator := frost.NewCoordinator(ciphersuite, publicKeyPackage.VerifyingKey, threshold, groupSize)
			signature, err := coordinator.Aggregate(msg, commitments, signatureShares, &frost.PublicKeyPackage{
				VerifyingKey:    publicKeyPackage.VerifyingKey,
				VerifyingShares: verifyingShares,
			})
			if err != nil {
				return fmt.Errorf("signature aggregation failed: %w", err)
			}

			curve := ciphersuite.Curve()
			fmt.Printf(
				"signed %q with %d of %d signers; R=%x z=%x\n",
				message, threshold, groupSize,
				curve.SerializePoint(signature.R), signature.Z.Bytes(),
			)

			return nil
		},
	}

	cmd.Flags().IntVar(&groupSize, "group-size", 5, "total number of signers")
	cmd.Flags().IntVar(&threshold, "threshold", 3, "number of signers required to sign")
	cmd.Flags().StringVar(&message, "message", "hello, FROST", "message to sign")

	return cmd
}
