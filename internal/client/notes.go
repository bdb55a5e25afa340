// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) newNotesCmd(owner ownerFunc) *cobra.Command {
	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Encrypt, list and share session notes and test results",
	}

	notesCmd.AddCommand(a.newNotesAddCmd(owner))
	notesCmd.AddCommand(a.newNotesListCmd(owner))
	notesCmd.AddCommand(a.newNotesShowCmd(owner))
	notesCmd.AddCommand(a.newNotesDeleteCmd(owner))
	notesCmd.AddCommand(a.newNotesBrowseCmd(owner))
	notesCmd.AddCommand(a.newNotesShareCmd(owner))
	notesCmd.AddCommand(a.newNotesRewrapCmd(owner))

	return notesCmd
}

func (a *App) newNotesAddCmd(owner ownerFunc) *cobra.Command {
	var (
		rawPurpose  string
		title       string
		content     string
		fromFile    string
		attachments []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Encrypt a note and upload it",
		Long:  `Encrypts a note for the owner's own public key. The content comes from --content, --file or standard input.`,
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

			body, err := readNoteContent(cmd.InOrStdin(), content, fromFile)
			if err != nil {
				return err
			}

			note := models.SessionNote{Title: title, Content: body, AttachmentKeys: attachments}
			record, err := a.services.RecordService.Create(cmd.Context(), ownerID, purpose, note)
			if err != nil {
				return fmt.Errorf("create note: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "note "+color.YellowString(record.ID)+" encrypted and uploaded")
			return nil
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", models.PurposeSessionNotes.String(), "one of: "+purposesFlagUsage())
	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note text")
	cmd.Flags().StringVar(&fromFile, "file", "", "read the note text from a file")
	cmd.Flags().StringSliceVar(&attachments, "attach", nil, "ids of uploaded attachments")
	cmd.MarkFlagsMutuallyExclusive("content", "file")

	return cmd
}

func readNoteContent(stdin io.Reader, content, fromFile string) (string, error) {
	switch {
	case content != "":
		return content, nil
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("read note file: %w", err)
		}
		content = string(data)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read note from stdin: %w", err)
		}
		content = string(data)
	}

	if strings.TrimSpace(content) == "" {
		return "", errEmptyNote
	}
	return content, nil
}

func (a *App) newNotesListCmd(owner ownerFunc) *cobra.Command {
	var rawPurpose string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Download and decrypt the owner's notes",
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

			records, err := a.services.RecordService.List(cmd.Context(), ownerID, purpose)
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				printHint(out, "no records")
				return nil
			}
			for _, record := range records {
				fmt.Fprintf(out, "%s  %s\n", color.HiBlackString(record.ID), noteLine(record))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", "", "one of: "+purposesFlagUsage()+" (default all)")

	return cmd
}

// noteLine renders a one-line summary, or the placeholder for records that
// could not be decrypted. A record that is not a session note is summarized
// by its raw content.
func noteLine(record models.PlaintextRecord) string {
	if record.Undecryptable {
		return color.YellowString(models.UndecryptablePlaceholder)
	}
	note, ok := asSessionNote(record)
	if !ok {
		line, _, _ := strings.Cut(string(record.Content), "\n")
		return line
	}
	if note.Title != "" {
		return note.Title
	}
	line, _, _ := strings.Cut(note.Content, "\n")
	return line
}

// asSessionNote decodes a readable record as a session note. ok is false when
// the content has another shape, such as a test_results answer array.
func asSessionNote(record models.PlaintextRecord) (note models.SessionNote, ok bool) {
	if err := record.Decode(&note); err != nil {
		return models.SessionNote{}, false
	}
	return note, note.Title != "" || note.Content != "" || len(note.AttachmentKeys) > 0
}

func (a *App) newNotesShowCmd(owner ownerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Decrypt and print one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}

			record, err := a.services.RecordService.Get(cmd.Context(), ownerID, args[0])
			if err != nil {
				return fmt.Errorf("get note: %w", err)
			}

			out := cmd.OutOrStdout()
			if record.Undecryptable {
				fmt.Fprintln(out, color.YellowString(models.UndecryptablePlaceholder))
				return nil
			}
			note, ok := asSessionNote(record)
			if !ok {
				fmt.Fprintln(out, string(record.Content))
				return nil
			}

			if note.Title != "" {
				fmt.Fprintln(out, color.New(color.Bold).Sprint(note.Title))
			}
			fmt.Fprintln(out, note.Content)
			if len(note.AttachmentKeys) > 0 {
				fmt.Fprintf(out, "attachments: %s\n", strings.Join(note.AttachmentKeys, ", "))
			}
			return nil
		},
	}
}

func (a *App) newNotesDeleteCmd(owner ownerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}

			if err = a.services.RecordService.Delete(cmd.Context(), ownerID, args[0]); err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "note "+color.YellowString(args[0])+" deleted")
			return nil
		},
	}
}

func (a *App) newNotesBrowseCmd(owner ownerFunc) *cobra.Command {
	var rawPurpose string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive note browser",
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
			return a.browser.Browse(cmd.Context(), ownerID, purpose)
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", "", "one of: "+purposesFlagUsage()+" (default all)")

	return cmd
}

func (a *App) newNotesShareCmd(owner ownerFunc) *cobra.Command {
	var recipient string

	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Print a note's envelope re-wrapped for another public key",
		Long:  `Re-wraps the note key for the recipient's public key and prints the envelope as JSON. Nothing is written to the server.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := owner()
			if err != nil {
				return err
			}
			recipientKey, err := decodePublicKey(recipient)
			if err != nil {
				return err
			}

			envelope, err := a.services.RecordService.Share(cmd.Context(), ownerID, args[0], recipientKey)
			if err != nil {
				return fmt.Errorf("share note: %w", err)
			}

			data, err := json.MarshalIndent(envelope, "", "  ")
			if err != nil {
				return fmt.Errorf("encode envelope: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&recipient, "to", "", "recipient public key, base64")

	return cmd
}

func (a *App) newNotesRewrapCmd(owner ownerFunc) *cobra.Command {
	var (
		rawPurpose string
		recipient  string
	)

	cmd := &cobra.Command{
		Use:   "rewrap",
		Short: "Hand every readable note of a purpose over to a new public key",
		Long:  `Re-wraps the key of every readable record for the new public key and updates the server. Records that cannot be opened on this device are left unchanged and listed.`,
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
			recipientKey, err := decodePublicKey(recipient)
			if err != nil {
				return err
			}

			report, err := a.services.RecordService.Rewrap(cmd.Context(), ownerID, purpose, recipientKey)
			if err != nil {
				return fmt.Errorf("rewrap %s: %w", purpose, err)
			}

			out := cmd.OutOrStdout()
			printSuccess(out, fmt.Sprintf("%d records re-wrapped", report.Rewrapped))
			if report.Skipped > 0 {
				printHint(out, fmt.Sprintf("%d records skipped: %s", report.Skipped, color.YellowString(strings.Join(report.SkippedIDs, ", "))))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawPurpose, "purpose", models.PurposeSessionNotes.String(), "one of: "+purposesFlagUsage())
	cmd.Flags().StringVar(&recipient, "to", "", "new public key, base64")

	return cmd
}
