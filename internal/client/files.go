// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) newFilesCmd(owner ownerFunc) *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Encrypt and upload attachments",
	}

	filesCmd.AddCommand(a.newFilesPutCmd(owner))
	filesCmd.AddCommand(a.newFilesGetCmd(owner))

	return filesCmd
}

func (a *App) newFilesPutCmd(owner ownerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "put <path>",
		Short: "Encrypt a file and upload it as an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read attachment: %w", err)
			}

			blob, err := a.services.AttachmentService.Upload(cmd.Context(), ownerID, filepath.Base(args[0]), data)
			if err != nil {
				return fmt.Errorf("upload attachment: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "attachment "+color.YellowString(blob.ID)+" uploaded")
			printHint(cmd.OutOrStdout(), "reference it with "+color.YellowString("notes add --attach "+blob.ID))
			return nil
		},
	}
}

func (a *App) newFilesGetCmd(owner ownerFunc) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Download and decrypt an attachment",
		Long:  `Writes the decrypted attachment to --out, or to standard output when --out is not set.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}

			attachment, err := a.services.AttachmentService.Download(cmd.Context(), ownerID, args[0])
			if err != nil {
				return fmt.Errorf("download attachment: %w", err)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(attachment.Data)
				return err
			}

			if err = os.WriteFile(outPath, attachment.Data, 0o600); err != nil {
				return fmt.Errorf("write attachment: %w", err)
			}
			printSuccess(cmd.ErrOrStderr(), "attachment written to "+color.YellowString(outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")

	return cmd
}
