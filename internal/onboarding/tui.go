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

package onboarding

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/provider"
)

const logo = `  ____ _ _       _
 / ___| (_)_ __ | |_
| |  _| | | '_ \| __|
| |_| | | | | | | |_
 \____|_|_|_| |_|\__|`

// providerPhase tracks the sub-screen within the provider step.
type providerPhase int

const (
	phasePick providerPhase = iota
	phaseKey
	phaseURL
)

// permissionMsg carries one poll result into the update loop.
type permissionMsg bool

// Model is the onboarding TUI state.
type Model struct {
	seq  *Sequencer
	perm permission.Service
	cfg  *config.Config
	save func(*config.Config) error

	poll    *PermissionPoll
	permCh  chan bool
	granted bool
	permErr string

	// provider step
	phase          providerPhase
	providerCursor int
	keyInput       textinput.Model
	urlInput       textinput.Model
	detectedEnv    string
	keyErr         string
	urlErr         string

	// browser automation step
	browserCursor int
	browserOn     bool
	checked       map[string]bool

	saveErr   string
	width     int
	height    int
	cancelled bool
	done      bool
}

// NewModel builds the onboarding TUI around a sequencer. Changes are
// written through save; cfg is pre-populated state for re-runs.
func NewModel(seq *Sequencer, perm permission.Service, cfg *config.Config, save func(*config.Config) error) Model {
	ki := textinput.New()
	ki.Placeholder = "sk-..."
	ki.EchoMode = textinput.EchoPassword
	ki.EchoCharacter = '•'
	ki.CharLimit = 256
	ki.Width = 48

	ui := textinput.New()
	ui.Placeholder = "https://"
	ui.CharLimit = 256
	ui.Width = 48

	checked := make(map[string]bool)
	for _, b := range cfg.BrowserAutomation.Browsers {
		checked[b] = true
	}

	m := Model{
		seq:       seq,
		perm:      perm,
		cfg:       cfg,
		save:      save,
		keyInput:  ki,
		urlInput:  ui,
		checked:   checked,
		browserOn: cfg.BrowserAutomation.Enabled,
		permCh:    make(chan bool, 1),
		granted:   perm.Granted(),
		width:     80,
		height:    24,
	}
	for i, name := range provider.Names {
		if name == cfg.Provider.Name {
			m.providerCursor = i
		}
	}
	permCh := m.permCh
	m.poll = NewPermissionPoll(perm, func(granted bool) {
		select {
		case permCh <- granted:
		default:
		}
	})
	return m
}

// Cancelled reports whether the user bailed out.
func (m Model) Cancelled() bool { return m.cancelled }

// Done reports whether the flow ran to completion.
func (m Model) Done() bool { return m.done }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// waitForPermission blocks until the poll reports, then feeds the result
// back into Update.
func waitForPermission(ch chan bool) tea.Cmd {
	return func() tea.Msg {
		return permissionMsg(<-ch)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case permissionMsg:
		m.granted = bool(msg)
		if m.seq.Current() == StepAccessibility {
			return m, waitForPermission(m.permCh)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.poll.Stop()
			m.cancelled = true
			return m, tea.Quit
		}
		switch m.seq.Current() {
		case StepWelcome:
			return m.updateWelcome(msg)
		case StepProvider:
			return m.updateProvider(msg)
		case StepAccessibility:
			return m.updateAccessibility(msg)
		case StepBrowser:
			return m.updateBrowser(msg)
		case StepComplete:
			return m.updateComplete(msg)
		}
	}
	return m, nil
}

// enterStep runs the side effects of landing on the current step. The
// accessibility step owns the permission poll: arriving starts it, leaving
// stops it.
func (m *Model) enterStep() tea.Cmd {
	if m.seq.Current() == StepAccessibility {
		m.granted = m.perm.Granted()
		m.poll.SetVisible(true)
		return waitForPermission(m.permCh)
	}
	m.poll.SetVisible(false)
	return nil
}

// --- Welcome ---

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	case "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Welcome to Glint"))
	b.WriteString("\n\n")
	b.WriteString("Glint sits in the background and appears when you press its hotkey.\n")
	b.WriteString("This quick setup picks your AI provider, sorts out keystroke access,\n")
	b.WriteString("and decides whether glint may drive your browser.\n")
	b.WriteString(helpStyle.Render("Press Enter to start, q to quit"))
	return b.String()
}

// --- AI Provider ---

func (m Model) selectedProvider() string {
	return provider.Names[m.providerCursor]
}

func (m *Model) persistProvider(name, key, baseURL string) error {
	m.cfg.Provider = config.ProviderConfig{Name: name, APIKey: key, BaseURL: baseURL}
	return m.save(m.cfg)
}

// prepareKeyInput pre-fills the key field from the config or, failing
// that, from the provider's conventional environment variable.
func (m *Model) prepareKeyInput(name string) {
	m.keyErr = ""
	m.detectedEnv = ""
	m.keyInput.SetValue(m.cfg.Provider.APIKey)
	if m.keyInput.Value() == "" {
		if key := provider.DetectKey(name); key != "" {
			m.keyInput.SetValue(key)
			if p, ok := provider.Get(name); ok {
				m.detectedEnv = p.EnvVar
			}
		}
	}
	m.keyInput.CursorEnd()
	m.keyInput.Focus()
}

func (m Model) updateProvider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseKey:
		return m.updateProviderKey(msg)
	case phaseURL:
		return m.updateProviderURL(msg)
	}
	return m.updateProviderPick(msg)
}

func (m Model) updateProviderPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.providerCursor > 0 {
			m.providerCursor--
		}
	case "down", "j":
		if m.providerCursor < len(provider.Names)-1 {
			m.providerCursor++
		}
	case "enter":
		name := m.selectedProvider()
		p, _ := provider.Get(name)
		switch {
		case name == "custom":
			m.urlErr = ""
			m.urlInput.SetValue(m.cfg.Provider.BaseURL)
			m.urlInput.CursorEnd()
			m.urlInput.Focus()
			m.phase = phaseURL
			return m, textinput.Blink
		case p.RequiresKey:
			m.phase = phaseKey
			m.prepareKeyInput(name)
			return m, textinput.Blink
		default:
			if err := m.persistProvider(name, "", ""); err != nil {
				m.saveErr = err.Error()
				return m, nil
			}
			m.seq.Advance()
			cmd := m.enterStep()
			return m, cmd
		}
	case "s":
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateProviderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.selectedProvider()
		key := strings.TrimSpace(m.keyInput.Value())
		if err := provider.CheckKey(name, key); err != nil {
			m.keyErr = err.Error()
			return m, nil
		}
		baseURL := ""
		if name == "custom" {
			baseURL = strings.TrimSpace(m.urlInput.Value())
		}
		if err := m.persistProvider(name, key, baseURL); err != nil {
			m.keyErr = err.Error()
			return m, nil
		}
		m.keyInput.Blur()
		m.phase = phasePick
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	case "esc":
		m.keyErr = ""
		m.keyInput.Blur()
		if m.selectedProvider() == "custom" {
			m.phase = phaseURL
			m.urlInput.Focus()
		} else {
			m.phase = phasePick
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	m.keyErr = ""
	return m, cmd
}

func (m Model) updateProviderURL(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		u := strings.TrimSpace(m.urlInput.Value())
		if u == "" {
			m.urlErr = "a custom endpoint needs a base URL"
			return m, nil
		}
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			m.urlErr = "base URL must start with http:// or https://"
			return m, nil
		}
		m.urlErr = ""
		m.urlInput.Blur()
		m.phase = phaseKey
		m.prepareKeyInput("custom")
		return m, textinput.Blink
	case "esc":
		m.urlErr = ""
		m.urlInput.Blur()
		m.phase = phasePick
		return m, nil
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	m.urlErr = ""
	return m, cmd
}

func (m Model) viewProvider() string {
	var b strings.Builder
	b.WriteString(m.stepTitle("AI Provider"))
	b.WriteString("\n")

	switch m.phase {
	case phaseKey:
		p, _ := provider.Get(m.selectedProvider())
		b.WriteString(subtitleStyle.Render(p.DisplayName + " API key\n"))
		b.WriteString("\n  " + m.keyInput.View() + "\n")
		if m.detectedEnv != "" {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  found in $%s", m.detectedEnv)) + "\n")
		}
		if !p.RequiresKey {
			b.WriteString(dimStyle.Render("  optional for this endpoint") + "\n")
		}
		if m.keyErr != "" {
			b.WriteString(errorStyle.Render("  "+m.keyErr) + "\n")
		}
		b.WriteString(helpStyle.Render("Enter to save, Esc to go back"))

	case phaseURL:
		b.WriteString(subtitleStyle.Render("Base URL of your endpoint\n"))
		b.WriteString("\n  " + m.urlInput.View() + "\n")
		if m.urlErr != "" {
			b.WriteString(errorStyle.Render("  "+m.urlErr) + "\n")
		}
		b.WriteString(helpStyle.Render("Enter to continue, Esc to go back"))

	default:
		b.WriteString(subtitleStyle.Render("Which backend should answer when you summon glint?\n"))
		b.WriteString("\n")
		for i, name := range provider.Names {
			p, _ := provider.Get(name)
			cursor := "  "
			if m.providerCursor == i {
				cursor = cursorStyle.Render("> ")
			}
			label := fmt.Sprintf("%-16s", p.DisplayName)
			if m.providerCursor == i {
				label = selectedStyle.Render(label)
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, dimStyle.Render(p.DefaultBaseURL)))
		}
		if m.saveErr != "" {
			b.WriteString(errorStyle.Render("\n  "+m.saveErr) + "\n")
		}
		b.WriteString(helpStyle.Render("Enter to select, s to skip, ctrl+c to quit"))
	}
	return b.String()
}

// --- Accessibility ---

func (m Model) updateAccessibility(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		if err := m.perm.OpenSettings(); err != nil {
			m.permErr = err.Error()
		}
	case "enter", "s":
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	}
	return m, nil
}

func (m Model) viewAccessibility() string {
	var b strings.Builder
	b.WriteString(m.stepTitle("Accessibility"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Glint needs permission to watch for its summon hotkey.\n"))
	b.WriteString("\n")
	if m.granted {
		b.WriteString(successStyle.Render("  ✓ Keystroke access granted") + "\n")
	} else {
		b.WriteString(errorStyle.Render("  ✗ Not granted yet") + "\n")
		b.WriteString(dimStyle.Render("  Checking again every second while this screen is open.") + "\n")
	}
	if m.permErr != "" {
		b.WriteString(errorStyle.Render("  "+m.permErr) + "\n")
	}
	b.WriteString(helpStyle.Render("o to open system settings, Enter to continue, s to skip"))
	return b.String()
}

// --- Browser automation ---

func (m Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := 1 + len(config.SupportedBrowsers)
	switch msg.String() {
	case "up", "k":
		if m.browserCursor > 0 {
			m.browserCursor--
		}
	case "down", "j":
		if m.browserCursor < rows-1 {
			m.browserCursor++
		}
	case " ", "x":
		if m.browserCursor == 0 {
			m.browserOn = !m.browserOn
		} else {
			b := config.SupportedBrowsers[m.browserCursor-1]
			m.checked[b] = !m.checked[b]
		}
	case "enter":
		m.cfg.BrowserAutomation.Enabled = m.browserOn
		var list []string
		for _, b := range config.SupportedBrowsers {
			if m.checked[b] {
				list = append(list, b)
			}
		}
		m.cfg.BrowserAutomation.Browsers = list
		if m.cfg.BrowserAutomation.AttachKey == "" {
			m.cfg.BrowserAutomation.AttachKey = config.DefaultAttachKey
		}
		if err := m.save(m.cfg); err != nil {
			m.saveErr = err.Error()
			return m, nil
		}
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	case "s":
		m.seq.Advance()
		cmd := m.enterStep()
		return m, cmd
	}
	return m, nil
}

func (m Model) viewBrowser() string {
	var b strings.Builder
	b.WriteString(m.stepTitle("Browser Automation"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Let glint read pages and fill forms in your browser. Space to toggle.\n"))
	b.WriteString("\n")

	rows := append([]string{"Enable browser automation"}, config.SupportedBrowsers...)
	for i, label := range rows {
		cursor := "  "
		if m.browserCursor == i {
			cursor = cursorStyle.Render("> ")
		}
		on := m.browserOn
		if i > 0 {
			on = m.checked[config.SupportedBrowsers[i-1]]
		}
		check := "[ ]"
		if on {
			check = selectedStyle.Render("[x]")
		}
		padded := fmt.Sprintf("%-28s", label)
		if m.browserCursor == i {
			padded = selectedStyle.Render(padded)
		}
		indent := ""
		if i > 0 {
			indent = "  "
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s\n", cursor, indent, check, padded))
	}

	attach := m.cfg.BrowserAutomation.AttachKey
	if attach == "" {
		attach = config.DefaultAttachKey
	}
	b.WriteString(fmt.Sprintf("\n  Attach chord: %s %s\n", attach, dimStyle.Render("(change later in glint settings)")))
	if m.saveErr != "" {
		b.WriteString(errorStyle.Render("  "+m.saveErr) + "\n")
	}
	b.WriteString(helpStyle.Render("Space to toggle, Enter to continue, s to skip"))
	return b.String()
}

// --- Complete ---

func (m Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "q":
		m.poll.Stop()
		if err := m.seq.Complete(); err != nil {
			m.saveErr = err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewComplete() string {
	providerName := "not set"
	if m.cfg.Provider.Name != "" {
		providerName = provider.DisplayName(m.cfg.Provider.Name)
	}
	hk := m.cfg.Hotkey
	if hk == "" {
		hk = config.DefaultHotkey
	}
	automation := "off"
	if m.cfg.BrowserAutomation.Enabled {
		automation = "on (" + strings.Join(m.cfg.BrowserAutomation.Browsers, ", ") + ")"
	}

	var b strings.Builder
	b.WriteString(successStyle.Render("✓ Setup complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Provider:            %s\n", providerName))
	b.WriteString(fmt.Sprintf("  Summon hotkey:       %s\n", hk))
	b.WriteString(fmt.Sprintf("  Browser automation:  %s\n", automation))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Run 'glint settings' any time to change these."))
	if m.saveErr != "" {
		b.WriteString("\n" + errorStyle.Render("  "+m.saveErr))
	}
	b.WriteString(helpStyle.Render("Press Enter to finish"))
	return b.String()
}

// --- Composition ---

func (m Model) stepTitle(title string) string {
	num := int(m.seq.Current()) + 1
	return titleStyle.Render(fmt.Sprintf("Step %d/%d — %s", num, len(Steps), title))
}

func (m Model) View() string {
	switch m.seq.Current() {
	case StepWelcome:
		return m.viewWelcome()
	case StepProvider:
		return m.viewProvider()
	case StepAccessibility:
		return m.viewAccessibility()
	case StepBrowser:
		return m.viewBrowser()
	case StepComplete:
		return m.viewComplete()
	}
	return ""
}
