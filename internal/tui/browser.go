// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const listTitleWidth = 60

type browserModel struct {
	ctx     context.Context
	records service.ClientRecordService
	copyFn  func(string) error
	logger  *logger.Logger

	ownerID int64
	purpose models.Purpose

	items   []noteItem
	idx     int
	detail  bool
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func newBrowserModel(ctx context.Context, records service.ClientRecordService, copyFn func(string) error, ownerID int64, purpose models.Purpose, logger *logger.Logger) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:     ctx,
		records: records,
		copyFn:  copyFn,
		logger:  logger,
		ownerID: ownerID,
		purpose: purpose,
		loading: true,
		spinner: s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadItems())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.idx = min(max(m.idx, 0), max(len(m.items)-1, 0))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "copied to clipboard"
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m browserModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadItems())
	}

	if m.detail {
		switch {
		case key.Matches(msg, keys.esc):
			m.detail = false
			m.status = ""
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "no records"
			return m, nil
		}
		m.detail = true
	}

	return m, nil
}

func (m browserModel) current() (noteItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return noteItem{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) View() string {
	if m.detail {
		if item, ok := m.current(); ok {
			return m.viewDetail(item)
		}
	}
	return m.viewList()
}

func (m browserModel) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " decrypting...")
	case len(m.items) == 0:
		b.WriteString("no records")
	default:
		for i, item := range m.items {
			cursor := "  "
			line := fitText(itemLabel(item.note), listTitleWidth)
			if item.undecryptable {
				line = undecryptableStyle.Render(models.UndecryptablePlaceholder)
			}
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString(m.viewStatus())

	title := "Records"
	if m.purpose != "" {
		title += " · " + m.purpose.String()
	}
	return renderPage(title, b.String(), "↑/↓ move  enter open  r reload  q quit")
}

func (m browserModel) viewDetail(item noteItem) string {
	var b strings.Builder

	if item.undecryptable {
		b.WriteString(undecryptableStyle.Render(models.UndecryptablePlaceholder))
		b.WriteString("\n\nThe private key for this record is not available on this device.")
	} else {
		b.WriteString(item.note.Content)
		if len(item.note.AttachmentKeys) > 0 {
			b.WriteString("\n\nattachments: " + strings.Join(item.note.AttachmentKeys, ", "))
		}
	}
	b.WriteString(m.viewStatus())

	title := item.note.Title
	if item.undecryptable || title == "" {
		title = item.id
	}
	return renderPage(title, b.String(), "c copy  esc back  q quit")
}

func (m browserModel) viewStatus() string {
	var out string
	if m.status != "" {
		out += "\n\n" + m.status
	}
	if m.errMsg != "" {
		out += "\n\n" + errorStyle.Render("error: "+m.errMsg)
	}
	return out
}

func (m browserModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	records := m.records
	ownerID := m.ownerID
	purpose := m.purpose
	log := m.logger

	return func() tea.Msg {
		if ownerID <= 0 {
			return listLoadedMsg{err: errOwnerIDNotSet}
		}

		plaintexts, err := records.List(ctx, ownerID, purpose)
		if err != nil {
			return listLoadedMsg{err: err}
		}

		items := make([]noteItem, 0, len(plaintexts))
		for _, plain := range plaintexts {
			item := noteItem{id: plain.ID, undecryptable: plain.Undecryptable}
			if !plain.Undecryptable {
				if err = plain.Decode(&item.note); err != nil {
					log.Debug().Err(err).
						Str("func", "browserModel.cmdLoadItems").
						Str("record_id", plain.ID).
						Msg("record is not a session note, showing raw content")
					item.note = models.SessionNote{Content: string(plain.Content)}
				}
			}
			items = append(items, item)
		}

		return listLoadedMsg{items: items}
	}
}

func (m browserModel) cmdCopy() tea.Cmd {
	item, ok := m.current()
	copyFn := m.copyFn

	return func() tea.Msg {
		if !ok || item.undecryptable || item.note.Content == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: copyFn(item.note.Content)}
	}
}

// itemLabel is the list label of a note: its title, else its first line.
func itemLabel(note models.SessionNote) string {
	if note.Title != "" {
		return note.Title
	}
	line, _, _ := strings.Cut(note.Content, "\n")
	return line
}
