// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	records service.ClientRecordService
	logger  *logger.Logger
}

func New(records service.ClientRecordService, logger *logger.Logger) *TUI {
	return &TUI{records: records, logger: logger}
}

// Browse runs the note browser for ownerID until the user quits. An empty
// purpose lists records of every purpose.
func (t *TUI) Browse(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	model := newBrowserModel(ctx, t.records, clipboard.WriteAll, ownerID, purpose, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}
