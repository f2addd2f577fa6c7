// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package settings is the panel where every configured glint field can be
// changed after onboarding: the summon hotkey (recorded live where the
// platform allows, typed otherwise), provider and credentials, launch at
// login, and browser automation. Edits are saved as they are made.
package settings

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-app/glint/internal/autostart"
	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/hotkey"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/provider"
)

type rowKind int

const (
	kindHotkey rowKind = iota
	kindProvider
	kindAPIKey
	kindBaseURL
	kindLaunchAtLogin
	kindPermission
	kindBrowserMaster
	kindBrowser
	kindAttachKey
)

type row struct {
	kind    rowKind
	label   string
	browser string
}

func panelRows() []row {
	rows := []row{
		{kind: kindHotkey, label: "Summon hotkey"},
		{kind: kindProvider, label: "Provider"},
		{kind: kindAPIKey, label: "API key"},
		{kind: kindBaseURL, label: "Base URL"},
		{kind: kindLaunchAtLogin, label: "Launch at login"},
		{kind: kindPermission, label: "Keystroke access"},
		{kind: kindBrowserMaster, label: "Browser automation"},
	}
	for _, b := range config.SupportedBrowsers {
		rows = append(rows, row{kind: kindBrowser, label: b, browser: b})
	}
	return append(rows, row{kind: kindAttachKey, label: "Attach chord"})
}

func (r row) section() string {
	switch r.kind {
	case kindHotkey:
		return "Summon"
	case kindProvider, kindAPIKey, kindBaseURL:
		return "AI Provider"
	case kindLaunchAtLogin, kindPermission:
		return "System"
	}
	return "Browser Automation"
}

type editField int

const (
	editNone editField = iota
	editAPIKey
	editBaseURL
	editHotkey
	editAttachKey
)

type recorderEvent int

const (
	recorderStateChanged recorderEvent = iota
	recorderCommitted
)

// recorderMsg carries one recorder callback into the update loop.
type recorderMsg recorderEvent

// Model is the settings panel state.
type Model struct {
	cfg  *config.Config
	save func(*config.Config) error
	perm permission.Service
	auto autostart.Manager

	rec   *hotkey.Recorder
	recCh chan recorderMsg

	rows   []row
	cursor int
	keys   keyMap
	help   help.Model

	editing    editField
	input      textinput.Model
	chordInput string
	editErr    string

	granted bool
	autoOn  bool
	saveErr string
	width   int
	height  int
}

// NewModel builds the panel. source may be nil on platforms without a
// system key source; the hotkey row then falls back to typed entry.
func NewModel(cfg *config.Config, perm permission.Service, auto autostart.Manager, source hotkey.Source, save func(*config.Config) error) Model {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 48

	m := Model{
		cfg:     cfg,
		save:    save,
		perm:    perm,
		auto:    auto,
		rows:    panelRows(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   in,
		granted: perm.Granted(),
		autoOn:  cfg.Settings.LaunchAtLogin,
		width:   80,
		height:  24,
	}
	if auto != nil {
		m.autoOn = auto.IsEnabled()
	}
	if source != nil {
		ch := make(chan recorderMsg, 8)
		m.recCh = ch
		m.rec = hotkey.NewRecorder(source, func(string) {
			select {
			case ch <- recorderMsg(recorderCommitted):
			default:
			}
		})
		m.rec.OnState = func(hotkey.State) {
			select {
			case ch <- recorderMsg(recorderStateChanged):
			default:
			}
		}
		m.rec.SetValue(m.hotkeyValue())
	}
	return m
}

func (m Model) hotkeyValue() string {
	if m.cfg.Hotkey != "" {
		return m.cfg.Hotkey
	}
	return config.DefaultHotkey
}

// Close releases the recorder and any key subscription it holds.
func (m Model) Close() {
	if m.rec != nil {
		m.rec.Close()
	}
}

func (m Model) Init() tea.Cmd {
	if m.rec == nil {
		return nil
	}
	return waitRecorder(m.recCh)
}

func waitRecorder(ch chan recorderMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case recorderMsg:
		if recorderEvent(msg) == recorderCommitted {
			m.cfg.Hotkey = m.rec.Value()
			m.persist()
		}
		return m, waitRecorder(m.recCh)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		// While the recorder is armed the chord goes through the event
		// source, not the terminal; whatever leaks through here is noise.
		if m.rec != nil && m.rec.State() == hotkey.Armed {
			return m, nil
		}
		if m.editing != editNone {
			return m.updateEdit(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m *Model) persist() {
	if err := m.save(m.cfg); err != nil {
		m.saveErr = err.Error()
		return
	}
	m.saveErr = ""
}

// nextProviderName cycles through the catalog. An unknown current name
// lands on the first entry.
func nextProviderName(current string, delta int) string {
	names := provider.Names
	idx := -delta
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	return names[(idx+delta+len(names))%len(names)]
}

func (m *Model) cycleProvider(delta int) {
	m.cfg.Provider.Name = nextProviderName(m.cfg.Provider.Name, delta)
	m.persist()
}

func browserListed(cfg *config.Config, name string) bool {
	for _, b := range cfg.BrowserAutomation.Browsers {
		if b == name {
			return true
		}
	}
	return false
}

func (m *Model) setLaunchAtLogin(on bool) {
	if m.auto != nil {
		var err error
		if on {
			err = m.auto.Enable()
		} else {
			err = m.auto.Disable()
		}
		if err != nil {
			m.saveErr = err.Error()
			return
		}
	}
	m.autoOn = on
	m.cfg.Settings.LaunchAtLogin = on
	m.persist()
}

func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.rows[m.cursor]
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		if m.rows[m.cursor].kind == kindPermission {
			m.granted = m.perm.Granted()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		if m.rows[m.cursor].kind == kindPermission {
			m.granted = m.perm.Granted()
		}
	case key.Matches(msg, m.keys.Toggle):
		switch r.kind {
		case kindLaunchAtLogin:
			m.setLaunchAtLogin(!m.autoOn)
		case kindBrowserMaster:
			m.cfg.BrowserAutomation.Enabled = !m.cfg.BrowserAutomation.Enabled
			m.persist()
		case kindBrowser:
			m.cfg.SetBrowserEnabled(r.browser, !browserListed(m.cfg, r.browser))
			m.persist()
		}
	case key.Matches(msg, m.keys.Cycle):
		if r.kind == kindProvider {
			delta := 1
			switch msg.String() {
			case "left", "h":
				delta = -1
			}
			m.cycleProvider(delta)
		}
	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit(r)
	case key.Matches(msg, m.keys.Record):
		return m.activateRow(r)
	case key.Matches(msg, m.keys.Open):
		if r.kind == kindPermission {
			if err := m.perm.OpenSettings(); err != nil {
				m.saveErr = err.Error()
			}
			m.granted = m.perm.Granted()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	}
	return m, nil
}

// activateRow handles enter: record on the hotkey row, edit on text rows,
// cycle on the provider row.
func (m Model) activateRow(r row) (tea.Model, tea.Cmd) {
	switch r.kind {
	case kindHotkey:
		if m.rec == nil {
			return m.beginEdit(r)
		}
		if err := m.rec.Start(); err != nil {
			m.saveErr = err.Error()
		}
	case kindAPIKey, kindBaseURL, kindAttachKey:
		return m.beginEdit(r)
	case kindProvider:
		m.cycleProvider(1)
	case kindPermission:
		if err := m.perm.OpenSettings(); err != nil {
			m.saveErr = err.Error()
		}
		m.granted = m.perm.Granted()
	}
	return m, nil
}

func (m Model) beginEdit(r row) (tea.Model, tea.Cmd) {
	m.editErr = ""
	switch r.kind {
	case kindAPIKey:
		if m.cfg.Provider.Name == "" {
			m.saveErr = "select a provider first"
			return m, nil
		}
		m.editing = editAPIKey
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
		m.input.Placeholder = "sk-..."
		m.input.SetValue(m.cfg.Provider.APIKey)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case kindBaseURL:
		m.editing = editBaseURL
		m.input.EchoMode = textinput.EchoNormal
		m.input.Placeholder = "https://"
		m.input.SetValue(m.cfg.Provider.BaseURL)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case kindHotkey:
		m.editing = editHotkey
		m.chordInput = m.cfg.Hotkey
	case kindAttachKey:
		m.editing = editAttachKey
		m.chordInput = m.cfg.BrowserAutomation.AttachKey
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing == editAPIKey || m.editing == editBaseURL {
		return m.updateInputEdit(msg)
	}
	return m.updateChordEdit(msg)
}

func (m Model) updateInputEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		if m.editing == editAPIKey {
			if err := provider.CheckKey(m.cfg.Provider.Name, val); err != nil {
				m.editErr = err.Error()
				return m, nil
			}
			m.cfg.Provider.APIKey = val
		} else {
			if val != "" && !strings.HasPrefix(val, "http://") && !strings.HasPrefix(val, "https://") {
				m.editErr = "base URL must start with http:// or https://"
				return m, nil
			}
			m.cfg.Provider.BaseURL = val
		}
		m.persist()
		m.editing = editNone
		m.input.Blur()
	case "esc":
		m.editing = editNone
		m.editErr = ""
		m.input.Blur()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.editErr = ""
		return m, cmd
	}
	return m, nil
}

func (m Model) updateChordEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(m.chordInput)
		if val == "" {
			m.editing = editNone
			m.editErr = ""
			break
		}
		chord, err := hotkey.ParseChord(val)
		if err != nil {
			m.editErr = err.Error()
			break
		}
		if m.editing == editHotkey {
			m.cfg.Hotkey = chord.String()
			if m.rec != nil {
				m.rec.SetValue(chord.String())
			}
		} else {
			m.cfg.BrowserAutomation.AttachKey = chord.String()
		}
		m.persist()
		m.editing = editNone
		m.editErr = ""
	case "esc":
		m.editing = editNone
		m.chordInput = ""
		m.editErr = ""
	case "backspace", "ctrl+h":
		m.editErr = ""
		if m.chordInput != "" {
			runes := []rune(m.chordInput)
			m.chordInput = string(runes[:len(runes)-1])
		}
	default:
		m.editErr = ""
		for _, c := range msg.String() {
			if unicode.IsPrint(c) {
				m.chordInput += string(c)
			}
		}
	}
	return m, nil
}

// --- View ---

func maskKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	return strings.Repeat("•", 8)
}

func (m Model) rowValue(r row) string {
	switch r.kind {
	case kindHotkey:
		if m.rec != nil {
			if m.rec.State() == hotkey.Armed {
				return selectedStyle.Render(m.rec.Display()) + dimStyle.Render("  press the chord now")
			}
			return m.rec.Display()
		}
		return m.hotkeyValue()
	case kindProvider:
		if m.cfg.Provider.Name == "" {
			return dimStyle.Render("not set")
		}
		return provider.DisplayName(m.cfg.Provider.Name)
	case kindAPIKey:
		masked := maskKey(m.cfg.Provider.APIKey)
		if masked == "" {
			return dimStyle.Render("not set")
		}
		return masked
	case kindBaseURL:
		if m.cfg.Provider.BaseURL != "" {
			return successStyle.Render(m.cfg.Provider.BaseURL)
		}
		return dimStyle.Render(provider.BaseURL(m.cfg.Provider.Name, ""))
	case kindLaunchAtLogin:
		return checkbox(m.autoOn)
	case kindPermission:
		if m.granted {
			return successStyle.Render("✓ granted")
		}
		return errorStyle.Render("✗ not granted") + dimStyle.Render("  o opens the system pane")
	case kindBrowserMaster:
		return checkbox(m.cfg.BrowserAutomation.Enabled)
	case kindBrowser:
		on := browserListed(m.cfg, r.browser)
		if !m.cfg.BrowserAutomation.Enabled {
			if on {
				return dimStyle.Render("[x]")
			}
			return dimStyle.Render("[ ]")
		}
		return checkbox(on)
	case kindAttachKey:
		if m.cfg.BrowserAutomation.AttachKey == "" {
			return dimStyle.Render(config.DefaultAttachKey)
		}
		return m.cfg.BrowserAutomation.AttachKey
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return selectedStyle.Render("[x]")
	}
	return "[ ]"
}

func (m Model) editingRow(r row) bool {
	switch m.editing {
	case editAPIKey:
		return r.kind == kindAPIKey
	case editBaseURL:
		return r.kind == kindBaseURL
	case editHotkey:
		return r.kind == kindHotkey
	case editAttachKey:
		return r.kind == kindAttachKey
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Glint Settings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Changes are saved as you make them.\n"))

	section := ""
	for i, r := range m.rows {
		if s := r.section(); s != section {
			section = s
			b.WriteString("\n" + sectionStyle.Render(section) + "\n")
		}

		cursor := "  "
		if m.cursor == i && m.editing == editNone {
			cursor = cursorStyle.Render("> ")
		}
		label := fmt.Sprintf("%-20s", r.label)
		if m.cursor == i && m.editing == editNone {
			label = selectedStyle.Render(label)
		}
		indent := ""
		if r.kind == kindBrowser {
			indent = "  "
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s\n", cursor, indent, label, m.rowValue(r)))

		if m.cursor == i && m.editingRow(r) {
			switch m.editing {
			case editAPIKey, editBaseURL:
				b.WriteString("    " + m.input.View() + "\n")
			default:
				b.WriteString(fmt.Sprintf("    Chord: %s\n", selectedStyle.Render(m.chordInput+"█")))
				b.WriteString(dimStyle.Render("    symbols (⇧⌘S) or words (cmd+shift+s)") + "\n")
			}
			if m.editErr != "" {
				b.WriteString(fmt.Sprintf("    %s\n", warnStyle.Render(m.editErr)))
			}
		}
	}

	if m.saveErr != "" {
		b.WriteString("\n" + errorStyle.Render("  "+m.saveErr) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
