package views

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhystmorgan/veContacts/internal/animation"
	"rhystmorgan/veContacts/internal/models"
)

var (
	keyAdd    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	keyDelete = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}
	keyHelp   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	keyQuit   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
)

func staticAnimations() animation.Config {
	cfg := animation.DefaultConfig()
	cfg.Enabled = false
	return cfg
}

func newTestContacts(t *testing.T, cfg animation.Config) *ContactsModel {
	t.Helper()
	gen := models.NewContactGenerator("", rand.New(rand.NewPCG(1, 1)), nil)
	panel := models.NewListPanel(gen, models.DefaultSeedCount, nil)
	return NewContactsModel(panel, cfg)
}

func press(m *ContactsModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestContactsInitialView(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	assert.Nil(t, m.Init(), "nothing to animate on start")

	view := m.View()
	assert.Contains(t, view, "Contacts (5)")
	for i := 0; i < 5; i++ {
		assert.Contains(t, view, "email"+string(rune('0'+i))+"@provider.com")
	}
	assert.Less(t, strings.Index(view, "Contact 4"), strings.Index(view, "Contact 0"))
}

func TestContactsCursorMovement(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	press(m, keyUp)
	assert.Equal(t, 0, m.cursor)

	press(m, keyDown, keyDown, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 4, m.cursor)

	press(m, keyUp)
	assert.Equal(t, 3, m.cursor)
}

func TestContactsSelectAndClear(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	press(m, keyDown, keyEnter)
	selected, ok := m.panel.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(3), selected.ID)
	assert.Contains(t, m.View(), "Avatar")

	press(m, keyEsc)
	_, ok = m.panel.Selected()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), "Avatar")
}

func TestContactsAdd(t *testing.T) {
	m := newTestContacts(t, staticAnimations())
	press(m, keyDown, keyDown)

	cmd := press(m, keyAdd)
	require.NotNil(t, cmd)

	assert.Equal(t, 6, m.panel.Len())
	assert.Equal(t, 0, m.cursor)

	first, _ := m.panel.At(0)
	selected, ok := m.panel.Selected()
	require.True(t, ok)
	assert.Equal(t, first, selected)
	assert.Equal(t, "Contact 5", first.Name)
	assert.Contains(t, m.View(), "Contact 5")
	assert.Contains(t, m.View(), "has been added")
}

func TestContactsDeleteSelected(t *testing.T) {
	m := newTestContacts(t, staticAnimations())
	original := m.panel.Contacts()

	press(m, keyAdd)
	press(m, keyDelete)

	assert.Equal(t, original, m.panel.Contacts())
	_, ok := m.panel.Selected()
	assert.False(t, ok)
	assert.Empty(t, m.leaving, "static rows are dropped immediately")
	assert.NotContains(t, m.View(), "email5@provider.com")
}

func TestContactsDeleteLastClampsCursor(t *testing.T) {
	m := newTestContacts(t, staticAnimations())
	press(m, keyDown, keyDown, keyDown, keyDown)

	press(m, keyDelete)

	assert.Equal(t, 4, m.panel.Len())
	assert.Equal(t, 3, m.cursor)
}

func TestContactsDeleteAllThenEmpty(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	for i := 0; i < 5; i++ {
		press(m, keyDelete)
	}
	assert.Equal(t, 0, m.panel.Len())
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "No contacts")

	// Nothing under the cursor
	press(m, keyDelete, keyEnter)
	_, ok := m.panel.Selected()
	assert.False(t, ok)
}

func TestContactsDeleteKeepsOtherSelection(t *testing.T) {
	m := newTestContacts(t, staticAnimations())
	press(m, keyEnter, keyDown, keyDelete)

	selected, ok := m.panel.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(4), selected.ID)
	assert.True(t, m.detail.Visible())
}

func TestContactsAnimatedAddAndDelete(t *testing.T) {
	m := newTestContacts(t, animation.DefaultConfig())

	cmd := press(m, keyAdd)
	require.NotNil(t, cmd)
	require.True(t, m.Animating())

	added, _ := m.panel.At(0)
	assert.Less(t, m.rows.Progress(added.ID), 1.0)

	runFrames(t, m)
	assert.Equal(t, 1.0, m.rows.Progress(added.ID))
	assert.Equal(t, 1.0, m.detail.Progress())

	press(m, keyDelete)
	require.Len(t, m.leaving, 1)
	assert.Contains(t, m.View(), "email5@provider.com", "leaving row is still drawn")

	runFrames(t, m)
	assert.Empty(t, m.leaving)
	assert.False(t, m.detail.Visible())
	assert.NotContains(t, m.View(), "email5@provider.com")
}

func runFrames(t *testing.T, m *ContactsModel) {
	t.Helper()
	for i := 0; i < 20*animation.DefaultFPS; i++ {
		if !m.Animating() {
			return
		}
		press(m, frameMsg(time.Now()))
	}
	t.Fatal("animations did not settle")
}

func TestContactsHelpToggle(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	press(m, keyHelp)
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "clear selection")

	press(m, keyHelp)
	assert.False(t, m.help.ShowAll)
}

func TestContactsQuit(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	cmd := press(m, keyQuit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestContactsWindowSize(t *testing.T) {
	m := newTestContacts(t, staticAnimations())

	press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.help.Width)
}
