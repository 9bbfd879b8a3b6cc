// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenBin screen = iota
	screenDetail
)

type pendingAction int

const (
	actionNone pendingAction = iota
	actionPurge
	actionPurgeAll
)

// writeClipboard is swapped in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx         context.Context
	cache       service.DocumentCache
	collections []string
	user        models.User
	version     string

	currentScreen screen
	list          binModel
	detail        detailModel

	busy         bool
	showConfirm  bool
	confirm      confirmModel
	pending      pendingAction
	pendingIDs   []string
	showError    bool
	errorOverlay errorOverlayModel
	showAbout    bool
}

func newAppModel(ctx context.Context, cache service.DocumentCache, collections []string, user models.User, version string) appModel {
	return appModel{
		ctx:         ctx,
		cache:       cache,
		collections: collections,
		user:        user,
		version:     version,
		list:        newBinModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadBin())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case binLoadedMsg:
		m.list.loading = false
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.setItems(msg.items)
		if m.currentScreen == screenDetail && !m.inBin(m.detail.item.ID) {
			m.currentScreen = screenBin
		}
		return m, nil
	case restoredMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.showErrorf(humanizeError(msg.err))
		case !msg.restored:
			m.setStatus(fmt.Sprintf("%s cannot be restored", msg.id))
		default:
			m.setStatus(fmt.Sprintf("Restored %s to %s", msg.id, msg.target))
		}
		return m, tea.Batch(m.cmdLoadBin(), cmdClearStatus())
	case purgedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		} else {
			m.setStatus(fmt.Sprintf("Purged %d document(s)", msg.count))
		}
		return m, tea.Batch(m.cmdLoadBin(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.setStatus("Copied " + msg.id)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showAbout {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showAbout = false
		}
		return m, nil
	}
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			return m.confirmPending()
		case key.Matches(msg, keys.no):
			m.showConfirm = false
			m.pending = actionNone
			m.pendingIDs = nil
		}
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	if m.currentScreen == screenDetail {
		return m.updateDetail(msg)
	}
	return m.updateBin(msg)
}

func (m appModel) updateBin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = detailModel{item: item}
			m.currentScreen = screenDetail
		}
	case key.Matches(msg, keys.restore):
		if item, ok := m.list.current(); ok {
			return m.startRestore(item)
		}
	case key.Matches(msg, keys.purge):
		if item, ok := m.list.current(); ok {
			m.askPurge(item)
		}
	case key.Matches(msg, keys.purgeAll):
		if len(m.list.items) > 0 {
			m.pending = actionPurgeAll
			m.pendingIDs = m.list.ids()
			m.confirm.message = fmt.Sprintf("Permanently delete all %d documents", len(m.pendingIDs))
			m.showConfirm = true
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m, cmdCopyToClipboard(item.ID)
		}
	case key.Matches(msg, keys.refresh):
		m.busy = true
		m.setStatus("Refreshing...")
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.about):
		m.showAbout = true
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenBin
	case key.Matches(msg, keys.restore):
		return m.startRestore(m.detail.item)
	case key.Matches(msg, keys.purge):
		m.askPurge(m.detail.item)
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.item.ID)
	}
	return m, nil
}

func (m appModel) startRestore(item models.Record) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.list.spinner.Tick, m.cmdRestore(item))
}

func (m *appModel) askPurge(item models.Record) {
	m.pending = actionPurge
	m.pendingIDs = []string{item.ID}
	m.confirm.message = fmt.Sprintf("Permanently delete %q", recordTitle(item))
	m.showConfirm = true
}

func (m appModel) confirmPending() (tea.Model, tea.Cmd) {
	action, ids := m.pending, m.pendingIDs
	m.showConfirm = false
	m.pending = actionNone
	m.pendingIDs = nil

	switch action {
	case actionPurge:
		m.busy = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdPurge(ids[0]))
	case actionPurgeAll:
		m.busy = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdPurgeMany(ids))
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showAbout {
		return appStyle.Render(renderAboutWindow(m.version, m.user))
	}

	var body string
	switch m.currentScreen {
	case screenBin:
		body = m.list.View(m.busy)
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	m.list.status = status
	m.detail.status = status
}

func (m appModel) inBin(id string) bool {
	return slices.ContainsFunc(m.list.items, func(r models.Record) bool { return r.ID == id })
}

// sortBin orders tombstones newest first.
func sortBin(items []models.Record) []models.Record {
	slices.SortStableFunc(items, func(a, b models.Record) int {
		switch {
		case a.DocUpdated > b.DocUpdated:
			return -1
		case a.DocUpdated < b.DocUpdated:
			return 1
		}
		return 0
	})
	return items
}

func (m appModel) cmdLoadBin() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		return binLoadedMsg{items: sortBin(cache.CachedAll(models.DeletedCollection))}
	}
}

// cmdRefresh re-reads every known collection so tombstones created
// elsewhere reach the bin.
func (m appModel) cmdRefresh() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	collections := slices.Clone(m.collections)
	for _, r := range m.list.items {
		if r.DocType != "" && !slices.Contains(collections, r.DocType) {
			collections = append(collections, r.DocType)
		}
	}
	return func() tea.Msg {
		for _, c := range collections {
			// users stays as preload narrowed it
			if c == models.UsersCollection {
				continue
			}
			cache.RefreshLatest(ctx, c)
		}
		return binLoadedMsg{items: sortBin(cache.CachedAll(models.DeletedCollection))}
	}
}

func (m appModel) cmdRestore(item models.Record) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		restored, err := cache.Restore(ctx, item.ID)
		return restoredMsg{id: item.ID, target: item.DocType, restored: restored, err: err}
	}
}

func (m appModel) cmdPurge(id string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return purgedMsg{count: 1, err: cache.Purge(ctx, id)}
	}
}

func (m appModel) cmdPurgeMany(ids []string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return purgedMsg{count: len(ids), err: cache.PurgeMany(ctx, ids)}
	}
}

func cmdCopyToClipboard(id string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(id); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{id: id}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
