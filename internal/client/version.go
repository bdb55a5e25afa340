// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Client version: %s\n", orNA(a.buildInfo.BuildVersion()))
			fmt.Fprintf(out, "Build date: %s\n", orNA(a.buildInfo.BuildDate()))
			fmt.Fprintf(out, "Build commit: %s\n", orNA(a.buildInfo.BuildCommit()))

			serverVersion, err := a.services.ServerAdapter.GetServerVersion(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Str("func", "App.version").Msg("server version unavailable")
				fmt.Fprintf(out, "Server version: %s\n", color.RedString("unavailable"))
				return nil
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
