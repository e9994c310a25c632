package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostbind/droid-bridge/compat"
	"github.com/hostbind/droid-bridge/hostsim"
	"github.com/hostbind/droid-bridge/notify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	deliveredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldChannel = iota
	fieldTitle
	fieldText
	fieldID
	fieldCount
)

type interactiveModel struct {
	err      error
	device   *hostsim.Device
	env      *compat.Env
	mgr      *notify.Manager
	status   string
	inputs   []textinput.Model
	focusIdx int
	channels map[string]bool
}

func newInteractiveModel(profile *hostsim.Profile) (*interactiveModel, error) {
	device := hostsim.NewDevice(profile)

	env, err := compat.New(device, device.Context())
	if err != nil {
		return nil, err
	}
	mgr, err := notify.NewManager(env)
	if err != nil {
		return nil, err
	}

	m := &interactiveModel{
		device:   device,
		env:      env,
		mgr:      mgr,
		channels: make(map[string]bool),
		inputs:   make([]textinput.Model, fieldCount),
	}

	for i, cfg := range []struct {
		prompt      string
		placeholder string
	}{
		{"channel: ", "alerts"},
		{"title:   ", "Hello"},
		{"text:    ", "World"},
		{"id:      ", "1"},
	} {
		ti := textinput.New()
		ti.Prompt = cfg.prompt
		ti.Placeholder = cfg.placeholder
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}

	return m, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.inputs[m.focusIdx].Blur()
			if msg.String() == "tab" {
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			} else {
				m.focusIdx = (m.focusIdx + len(m.inputs) - 1) % len(m.inputs)
			}
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "enter":
			m.post()
			return m, nil

		case "ctrl+x":
			if err := m.mgr.CancelAll(); err != nil {
				m.err = err
			} else {
				m.status = "all notifications cancelled"
			}
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) value(i int) string {
	v := m.inputs[i].Value()
	if v == "" {
		return m.inputs[i].Placeholder
	}
	return v
}

func (m *interactiveModel) post() {
	m.err = nil
	m.status = ""

	channel := m.value(fieldChannel)
	id, err := strconv.ParseInt(m.value(fieldID), 10, 32)
	if err != nil {
		m.err = fmt.Errorf("bad id: %w", err)
		return
	}

	// Register each channel id once per session. On hosts without channel
	// support this is a successful no-op.
	if !m.channels[channel] {
		if err := notify.CreateChannel(m.env, notify.Channel{
			ID:         channel,
			Name:       channel,
			Importance: notify.ImportanceDefault,
		}); err != nil {
			m.err = err
			return
		}
		m.channels[channel] = true
	}

	b, err := notify.NewBuilder(m.env, channel)
	if err != nil {
		m.err = err
		return
	}
	if _, err := b.SetTitle(m.value(fieldTitle)); err != nil {
		m.err = err
		return
	}
	if _, err := b.SetText(m.value(fieldText)); err != nil {
		m.err = err
		return
	}
	if _, err := b.SetAutoCancel(true); err != nil {
		m.err = err
		return
	}

	if err := m.mgr.Notify(b, int32(id)); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("posted notification #%d", id)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Notification Simulator"))
	fmt.Fprintf(&b, "  api level %d\n\n", m.device.API())

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(deliveredStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	delivered := m.device.Delivered()
	b.WriteString(labelStyle.Render(fmt.Sprintf("Delivered (%d):", len(delivered))))
	b.WriteString("\n")
	for _, dl := range delivered {
		fmt.Fprintf(&b, "  #%-4d %s / %s", dl.ID, dl.Title, dl.Text)
		if dl.ChannelID != "" {
			fmt.Fprintf(&b, "  [%s]", dl.ChannelID)
		}
		fmt.Fprintf(&b, "  (via %s)\n", dl.Via)
	}

	channels := m.device.Channels()
	if len(channels) > 0 {
		b.WriteString(labelStyle.Render("Channels:"))
		b.WriteString("\n")
		for _, ch := range channels {
			fmt.Fprintf(&b, "  %s (importance %d)\n", ch.ID, ch.Importance)
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field • enter post • ctrl+x cancel all • esc quit"))
	return b.String()
}

func runInteractive(profile *hostsim.Profile) error {
	m, err := newInteractiveModel(profile)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
