package explorer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/variantkit/variantkit/internal/variant"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth(msg.Width), msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// While filtering, all input belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCombo):
			if it, ok := m.selected(); ok {
				_, index, total := m.currentCombo(it)
				m.comboIndex[it.name] = (index + 1) % total
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevCombo):
			if it, ok := m.selected(); ok {
				_, index, total := m.currentCombo(it)
				m.comboIndex[it.name] = (index - 1 + total) % total
			}
			return m, nil

		case key.Matches(msg, m.keys.Hover):
			m.hovered = !m.hovered
			if m.hovered {
				m.machine.Handle(variant.EventPointerEnter)
			} else {
				m.machine.Handle(variant.EventPointerLeave)
			}
			return m, nil

		case key.Matches(msg, m.keys.Focus):
			m.focused = !m.focused
			if m.focused {
				m.machine.Handle(variant.EventFocusGained)
			} else {
				m.machine.Handle(variant.EventFocusLost)
			}
			return m, nil

		case key.Matches(msg, m.keys.Press):
			m.pressed = !m.pressed
			if m.pressed {
				m.machine.Handle(variant.EventPress)
			} else {
				m.machine.Handle(variant.EventRelease)
			}
			return m, nil

		case key.Matches(msg, m.keys.Disable):
			if m.machine.Disabled() {
				m.machine.Handle(variant.EventEnable)
			} else {
				m.machine.Handle(variant.EventDisable)
				m.pressed = false
			}
			return m, nil

		case key.Matches(msg, m.keys.ResetState):
			m.machine.Reset()
			m.hovered = false
			m.focused = false
			m.pressed = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func listWidth(total int) int {
	width := total / 3
	if width < 28 {
		width = 28
	}
	return width
}
