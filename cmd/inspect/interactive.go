package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	hexWidth = 16
	hexRows  = 16
)

type inspectModel struct {
	filename string
	data     []byte
	cursor   int
	jump     textinput.Model
	jumping  bool
	jumpErr  string
}

func runInteractive(filename string, data []byte) error {
	jump := textinput.New()
	jump.Placeholder = "offset (dec or 0x hex)"
	jump.CharLimit = 18
	jump.Width = 24

	m := inspectModel{
		filename: filename,
		data:     data,
		jump:     jump,
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.jumping {
		switch keyMsg.String() {
		case "esc":
			m.jumping = false
			m.jumpErr = ""
			return m, nil
		case "enter":
			target, err := parseOffset(m.jump.Value())
			if err != nil || target < 0 || target >= len(m.data) {
				m.jumpErr = "offset out of range"
				return m, nil
			}
			m.cursor = target
			m.jumping = false
			m.jumpErr = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-hexWidth)
	case "down", "j":
		m.move(hexWidth)
	case "pgup":
		m.move(-hexWidth * hexRows)
	case "pgdown":
		m.move(hexWidth * hexRows)
	case "home":
		m.cursor = 0
	case "end":
		if len(m.data) > 0 {
			m.cursor = len(m.data) - 1
		}
	case "g":
		m.jumping = true
		m.jump.SetValue("")
		m.jump.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *inspectModel) move(delta int) {
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.data) {
		next = len(m.data) - 1
	}
	if next >= 0 {
		m.cursor = next
	}
}

func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 0, 64)
	return int(v), err
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %d bytes", m.filename, len(m.data))))
	b.WriteString("\n\n")

	if len(m.data) == 0 {
		b.WriteString(helpStyle.Render("empty buffer"))
		b.WriteString("\n")
		return b.String()
	}

	// Hex window centered on the cursor's row.
	cursorRow := m.cursor / hexWidth
	firstRow := cursorRow - hexRows/2
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := (len(m.data) - 1) / hexWidth
	if firstRow > lastRow-hexRows+1 {
		firstRow = lastRow - hexRows + 1
	}
	if firstRow < 0 {
		firstRow = 0
	}

	for row := firstRow; row <= lastRow && row < firstRow+hexRows; row++ {
		base := row * hexWidth
		end := base + hexWidth
		if end > len(m.data) {
			end = len(m.data)
		}

		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08X", base)))
		b.WriteString("  ")
		for i := base; i < base+hexWidth; i++ {
			if i >= end {
				b.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%02X", m.data[i])
			if i == m.cursor {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString(" ")
		for i := base; i < end; i++ {
			ch := "."
			if m.data[i] < 0x80 && unicode.IsPrint(rune(m.data[i])) {
				ch = string(rune(m.data[i]))
			}
			if i == m.cursor {
				ch = cursorStyle.Render(ch)
			}
			b.WriteString(ch)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(offsetStyle.Render(fmt.Sprintf("offset 0x%X (%d)", m.cursor, m.cursor)))
	b.WriteString("\n")
	for _, line := range readouts(m.data, m.cursor) {
		if strings.Contains(line, "exceeds") || strings.Contains(line, "invalid") {
			b.WriteString(errorStyle.Render("  " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.jumping {
		b.WriteString("Jump to: ")
		b.WriteString(m.jump.View())
		if m.jumpErr != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(m.jumpErr))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: jump • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("←↓↑→/hjkl: move • pgup/pgdn: page • g: go to offset • q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}
