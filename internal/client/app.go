// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type App struct {
	services  *service.ClientServices
	browser   Browser
	buildInfo models.AppBuildInfo
	cfg       config.ClientApp
	logger    *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func NewApp(services *service.ClientServices, browser Browser, buildInfo models.AppBuildInfo, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &App{
		services:  services,
		browser:   browser,
		buildInfo: buildInfo,
		cfg:       cfg,
		logger:    logger,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}, nil
}

// Run executes args against the command tree. A failed command prints its
// error once and the error is returned to the caller.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if cmd, err := root.ExecuteContextC(ctx); err != nil {
		a.logger.Error().Err(err).Str("func", "App.Run").Str("command", cmd.CommandPath()).Msg("command failed")
		printFailure(a.errOut, err.Error())
		return err
	}
	return nil
}

func (a *App) newRootCmd() *cobra.Command {
	var ownerID int64

	root := &cobra.Command{
		Use:           "clinic-vault",
		Short:         "Encrypted clinical records client",
		Long:          `Encrypts session notes, test results and attachments on this device before they reach the record server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger.Debug().
				Str("func", "App.PersistentPreRun").
				Str("command", cmd.CommandPath()).
				Int64("owner_id", ownerID).
				Msg("running command")
		},
	}
	root.PersistentFlags().Int64Var(&ownerID, "owner", a.cfg.OwnerID, "owner id the records belong to")

	owner := func() (int64, error) {
		if ownerID <= 0 {
			return 0, errOwnerIDNotSet
		}
		return ownerID, nil
	}

	root.AddCommand(a.newKeysCmd(owner))
	root.AddCommand(a.newNotesCmd(owner))
	root.AddCommand(a.newFilesCmd(owner))
	root.AddCommand(a.newVersionCmd())

	return root
}

// ownerFunc resolves the --owner flag at execution time.
type ownerFunc func() (int64, error)

func printSuccess(w io.Writer, msg string) {
	_, _ = io.WriteString(w, color.GreenString("✓")+" "+msg+"\n")
}

func printFailure(w io.Writer, msg string) {
	_, _ = io.WriteString(w, color.RedString("✗")+" "+msg+"\n")
}

func printHint(w io.Writer, msg string) {
	_, _ = io.WriteString(w, color.CyanString("→")+" "+msg+"\n")
}
