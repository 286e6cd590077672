package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/classfile"
	"github.com/wippyai/go-jni/internal/codegen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	cls      *classfile.Class
	skipped  map[string]string
	filter   textinput.Model
	filename string
	visible  []classfile.Method
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type loadedMsg struct {
	err     error
	cls     *classfile.Class
	skipped map[string]string
}

func newInteractiveModel(filename string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "name or descriptor"
	ti.Prompt = "/ "
	ti.Width = 40
	return &interactiveModel{
		filename: filename,
		filter:   ti,
		state:    stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadClass
}

func (m *interactiveModel) loadClass() tea.Msg {
	cls, err := classfile.ParseFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	b, err := codegen.Bindings(cls, "preview")
	if err != nil {
		return loadedMsg{err: err}
	}
	skipped := make(map[string]string, len(b.Skipped))
	for _, s := range b.Skipped {
		skipped[s.Name+":"+s.Descriptor] = s.Reason
	}
	return loadedMsg{cls: cls, skipped: skipped}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cls = msg.cls
		m.skipped = msg.skipped
		m.applyFilter()
	}

	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		if msg.String() == "esc" {
			m.filter.SetValue("")
			m.applyFilter()
		}
		m.filter.Blur()
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) applyFilter() {
	if m.cls == nil {
		return
	}
	q := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, method := range m.cls.Methods {
		if q == "" || strings.Contains(strings.ToLower(method.Key()), q) {
			m.visible = append(m.visible, method)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.cls == nil {
		return "Loading class..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("jnigen"))
	b.WriteString(" ")
	b.WriteString(m.cls.DottedName())
	b.WriteString(descStyle.Render(fmt.Sprintf("  Java %s", m.cls.Release())))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		for i, method := range m.visible {
			line := m.formatMethod(method)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("  no matching methods"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))

	case stateDetail:
		method := m.visible[m.selected]
		b.WriteString(methodStyle.Render(m.cls.JavaSignature(method)))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Descriptor: %s\n", descStyle.Render(method.Descriptor))
		if method.Signature != "" {
			fmt.Fprintf(&b, "Generic:    %s\n", method.Signature)
		}
		fmt.Fprintf(&b, "Flags:      %s\n", strings.Join(flags(method), " "))
		if reason, ok := m.skipped[method.Key()]; ok {
			b.WriteString(skippedStyle.Render("Not bound: " + reason))
		} else {
			b.WriteString(methodStyle.Render("Bound as " + handleName(method)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMethod(method classfile.Method) string {
	line := methodStyle.Render(method.Name) + " " + descStyle.Render(method.Descriptor)
	if _, ok := m.skipped[method.Key()]; ok {
		line += skippedStyle.Render(" (skipped)")
	}
	return line
}

func flags(method classfile.Method) []string {
	var out []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{method.Public, "public"},
		{method.Static, "static"},
		{method.Abstract, "abstract"},
		{method.Native, "native"},
		{method.Synthetic, "synthetic"},
		{method.Bridge, "bridge"},
	} {
		if f.set {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		out = append(out, "package-private")
	}
	return out
}

// handleName names the generated handle kind, e.g. "StaticMethod2".
func handleName(method classfile.Method) string {
	params, _, _ := jni.ParseMethodDescriptor(method.Descriptor)
	name := fmt.Sprintf("Method%d", len(params))
	if method.Static {
		name = "Static" + name
	}
	return name
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
