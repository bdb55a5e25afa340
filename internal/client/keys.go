// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) newKeysCmd(owner ownerFunc) *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the key pairs stored on this device",
	}

	keysCmd.AddCommand(a.newKeysInitCmd(owner))
	keysCmd.AddCommand(a.newKeysShowCmd(owner))
	keysCmd.AddCommand(a.newKeysPurgeCmd(owner))

	return keysCmd
}

func (a *App) newKeysInitCmd(owner ownerFunc) *cobra.Command {
	var rawPurpose string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate key pairs for the owner, one per purpose",
		Long:  `Generates and stores a key pair for the given purpose, or for every purpose when none is given. Existing pairs are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}
			purpose, err := parsePurpose(rawPurpose, true)
			if err != nil {
				return err
			}

			purposes := models.Purposes
			if purpose != "" {
				purposes = []models.Purpose{purpose}
			}

			for _, p := range purposes {
				pair, err := a.services.KeyPairStore.InitializeKeyPair(cmd.Context(), ownerID, p)
				if err != nil {
					return fmt.Errorf("initialize %s key pair: %w", p, err)
				}
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s %s", color.YellowString(p.String()), encodePublicKey(pair.PublicKey)))
				if !pair.HasPrivateKey() {
					printHint(cmd.OutOrStdout(), "private key of "+p.String()+" is not available on this device")
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", "", "one of: "+purposesFlagUsage())

	return cmd
}

func (a *App) newKeysShowCmd(owner ownerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the public keys and whether the private keys are present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range models.Purposes {
				pair := a.services.KeyPairStore.RetrieveKeyPair(cmd.Context(), ownerID, p)
				switch {
				case !pair.HasPublicKey():
					fmt.Fprintf(out, "%s: %s\n", p, color.HiBlackString("no key pair"))
				case !pair.HasPrivateKey():
					fmt.Fprintf(out, "%s: %s %s\n", p, encodePublicKey(pair.PublicKey), color.RedString("(public only)"))
				default:
					fmt.Fprintf(out, "%s: %s\n", p, encodePublicKey(pair.PublicKey))
				}
			}
			return nil
		},
	}
}

func (a *App) newKeysPurgeCmd(owner ownerFunc) *cobra.Command {
	var (
		rawPurpose string
		confirmed  bool
	)

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove a private key from this device",
		Long:  `Removes the private key of one purpose. Records encrypted for it can no longer be read on this device.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}
			purpose, err := parsePurpose(rawPurpose, false)
			if err != nil {
				return err
			}
			if !confirmed {
				return errPurgeNotConfirmed
			}

			if err = a.services.KeyPairStore.PurgePrivateKey(cmd.Context(), ownerID, purpose); err != nil {
				return fmt.Errorf("purge %s private key: %w", purpose, err)
			}
			printSuccess(cmd.OutOrStdout(), "private key of "+color.YellowString(purpose.String())+" removed from this device")
			return nil
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", "", "one of: "+purposesFlagUsage())
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the purge")

	return cmd
}
