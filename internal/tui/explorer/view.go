package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/variantkit/variantkit/internal/variant"
)

// View implements tea.Model.
func (m Model) View() string {
	left := m.list.View()
	right := m.detailView()

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) detailView() string {
	it, ok := m.selected()
	if !ok {
		return detailPaneStyle.Render("no component selected")
	}

	cfg, index, total := m.currentCombo(it)
	state := m.machine.State()

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(it.name))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("combination %d/%d", index+1, total)))
	b.WriteString("\n")
	for _, axis := range it.spec.Axes {
		value, _ := cfg.Value(axis.Name)
		b.WriteString(fmt.Sprintf("  %s = %s\n", labelStyle.Render(axis.Name), value))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("state: "))
	b.WriteString(stateActiveStyle.Render(state.String()))
	b.WriteString("\n\n")

	desc, err := variant.Resolve(it.spec, cfg, state)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(labelStyle.Render("classes: "))
		b.WriteString(tokenStyle.Render(desc.ClassString()))
		b.WriteString("\n")
		for _, attrName := range desc.ARIAKeys() {
			b.WriteString(ariaStyle.Render(fmt.Sprintf("%s=%q", attrName, desc.ARIA[attrName])))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.stateTable(it, cfg))

	b.WriteString(helpStyle.Render("tab combo · h hover · f focus · a press · d disable · r reset · q quit"))

	return detailPaneStyle.Width(m.width - listWidth(m.width) - 4).Render(b.String())
}

// stateTable previews the descriptor of every interaction state for the
// active combination.
func (m Model) stateTable(it item, cfg variant.Config) string {
	var b strings.Builder
	current := m.machine.State()

	for _, state := range variant.States() {
		marker := "  "
		name := labelStyle.Render(state.String())
		if state == current {
			marker = stateActiveStyle.Render("> ")
			name = stateActiveStyle.Render(state.String())
		}

		desc, err := variant.Resolve(it.spec, cfg, state)
		if err != nil {
			b.WriteString(fmt.Sprintf("%s%-10s %s\n", marker, name, errorStyle.Render(err.Error())))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s\n", marker, name, tokenStyle.Render(desc.ClassString())))
	}

	return b.String()
}
