package explorer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/variantkit/internal/catalog"
	"github.com/variantkit/variantkit/internal/variant"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestNewModelListsCatalogSorted(t *testing.T) {
	t.Parallel()

	m := NewModel(catalog.Builtin())
	items := m.list.Items()
	require.Len(t, items, 10)

	first, ok := items[0].(item)
	require.True(t, ok)
	assert.Equal(t, "alert", first.name)
	assert.Contains(t, first.Description(), "tone")
}

func TestUpdateTogglesInteractionState(t *testing.T) {
	t.Parallel()

	m := NewModel(catalog.Builtin())

	next, _ := m.Update(keyMsg('h'))
	m = next.(Model)
	assert.Equal(t, variant.StateHover, m.machine.State())

	next, _ = m.Update(keyMsg('a'))
	m = next.(Model)
	assert.Equal(t, variant.StateActive, m.machine.State())

	next, _ = m.Update(keyMsg('d'))
	m = next.(Model)
	assert.Equal(t, variant.StateDisabled, m.machine.State())

	next, _ = m.Update(keyMsg('r'))
	m = next.(Model)
	assert.Equal(t, variant.StateRest, m.machine.State())
}

func TestUpdateCyclesCombinations(t *testing.T) {
	t.Parallel()

	m := NewModel(catalog.Builtin())
	it, ok := m.selected()
	require.True(t, ok)

	_, index, total := m.currentCombo(it)
	assert.Equal(t, 0, index)
	require.Greater(t, total, 1)

	next, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	m = next.(Model)
	_, index, _ = m.currentCombo(it)
	assert.Equal(t, 1, index)

	next, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyShiftTab}))
	m = next.(Model)
	_, index, _ = m.currentCombo(it)
	assert.Equal(t, 0, index)
}

func TestUpdateQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(catalog.Builtin())
	_, cmd := m.Update(keyMsg('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsResolvedTokens(t *testing.T) {
	t.Parallel()

	m := NewModel(catalog.Builtin())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "alert")
	assert.Contains(t, view, "classes:")
	assert.Contains(t, view, "rest")
}
