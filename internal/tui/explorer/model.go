package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"

	"github.com/variantkit/variantkit/internal/catalog"
	"github.com/variantkit/variantkit/internal/variant"
)

// item adapts a catalog entry to the bubbles list model.
type item struct {
	name string
	spec variant.Spec
}

func (i item) Title() string { return i.name }

func (i item) Description() string {
	axes := make([]string, 0, len(i.spec.Axes))
	for _, axis := range i.spec.Axes {
		axes = append(axes, fmt.Sprintf("%s(%d)", axis.Name, len(axis.Values)))
	}
	return strings.Join(axes, " · ")
}

func (i item) FilterValue() string { return i.name }

type keyMap struct {
	NextCombo  key.Binding
	PrevCombo  key.Binding
	Hover      key.Binding
	Focus      key.Binding
	Press      key.Binding
	Disable    key.Binding
	ResetState key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextCombo:  key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next combo")),
		PrevCombo:  key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev combo")),
		Hover:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle hover")),
		Focus:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle focus")),
		Press:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle press")),
		Disable:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle disabled")),
		ResetState: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset state")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the interactive catalog explorer: a component list beside a
// detail pane showing the resolved descriptor for the current
// combination under a live interaction machine.
type Model struct {
	list    list.Model
	keys    keyMap
	machine *variant.Machine

	// Per-session interaction toggles mirrored into the machine.
	hovered bool
	focused bool
	pressed bool

	comboIndex map[string]int

	width  int
	height int
}

// NewModel creates an explorer over the catalog's components.
func NewModel(c *catalog.Catalog) Model {
	names := c.Names()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		spec, _ := c.Get(name)
		items = append(items, item{name: name, spec: spec})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedTitleStyle
	delegate.Styles.SelectedDesc = selectedDescStyle

	l := list.New(items, delegate, 0, 0)
	l.Title = "components"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = listTitleStyle

	return Model{
		list:       l,
		keys:       defaultKeyMap(),
		machine:    variant.NewMachine(),
		comboIndex: make(map[string]int),
		width:      80,
		height:     24,
	}
}

func (m Model) selected() (item, bool) {
	it, ok := m.list.SelectedItem().(item)
	return it, ok
}

// currentCombo returns the active combination for the selected component.
func (m Model) currentCombo(it item) (variant.Config, int, int) {
	combos := variant.Combinations(it.spec)
	index := m.comboIndex[it.name] % len(combos)
	return combos[index], index, len(combos)
}
