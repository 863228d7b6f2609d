package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/veContacts/internal/animation"
	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/utils"
)

const (
	defaultWidth  = 80
	detailWidth   = 44
	nameWidth     = 14
	slideDistance = 8
)

// frameMsg advances every running transition by one frame
type frameMsg time.Time

// ContactDeletedMsg is emitted after a contact leaves the list
type ContactDeletedMsg struct {
	Contact models.Contact
}

// ContactCreatedMsg is emitted after a contact is added
type ContactCreatedMsg struct {
	Contact models.Contact
}

// leavingRow is a deleted contact still drawn while its leave transition runs
type leavingRow struct {
	contact models.Contact
	index   int
}

type ContactsModel struct {
	panel *models.ListPanel

	// UI state
	cursor         int
	successMessage string
	keys           KeyMap
	help           help.Model
	styles         utils.Styles

	// Transitions
	animCfg  animation.Config
	rows     *animation.Set[int64]
	detail   *animation.Transition
	leaving  []leavingRow
	lastShow models.Contact
	ticking  bool

	// Window dimensions
	width  int
	height int
}

func NewContactsModel(panel *models.ListPanel, animCfg animation.Config) *ContactsModel {
	m := &ContactsModel{
		panel:   panel,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  utils.NewStyles(utils.Colours),
		animCfg: animCfg,
		rows:    animation.NewSet[int64](animCfg),
		detail:  animation.NewTransition(animCfg),
		width:   defaultWidth,
	}

	// Seeded rows are already on screen
	for _, contact := range panel.Contacts() {
		m.rows.Show(contact.ID)
	}
	if selected, ok := panel.Selected(); ok {
		m.lastShow = selected
		m.detail.Enter()
	}

	return m
}

func (m *ContactsModel) Init() tea.Cmd {
	return m.animate()
}

func (m *ContactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.ticking = false
		m.pruneLeaving(m.rows.Tick())
		m.detail.Tick()
		return m, m.animate()

	case tea.KeyMsg:
		return m.updateListView(msg)
	}

	return m, nil
}

func (m *ContactsModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.panel.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if contact, ok := m.panel.At(m.cursor); ok {
			m.selectContact(&contact)
		}

	case key.Matches(msg, m.keys.Clear):
		m.selectContact(nil)

	case key.Matches(msg, m.keys.Add):
		contact := m.addContact()
		return m, tea.Batch(m.animate(), emit(ContactCreatedMsg{Contact: contact}))

	case key.Matches(msg, m.keys.Delete):
		if contact, ok := m.panel.At(m.cursor); ok {
			m.deleteContact(contact)
			return m, tea.Batch(m.animate(), emit(ContactDeletedMsg{Contact: contact}))
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.animate()
}

func (m *ContactsModel) selectContact(contact *models.Contact) {
	m.panel.Select(contact)
	if contact == nil {
		m.detail.Leave()
		return
	}
	m.lastShow = *contact
	m.detail.Enter()
}

func (m *ContactsModel) addContact() models.Contact {
	contact := m.panel.Add()
	// A row still leaving under the same id is replaced by the new one
	m.pruneLeaving([]int64{contact.ID})
	m.rows.Enter(contact.ID)
	m.cursor = 0

	m.lastShow = contact
	m.detail.Enter()
	m.successMessage = fmt.Sprintf("Contact '%s' has been added.", contact.Name)
	return contact
}

func (m *ContactsModel) deleteContact(contact models.Contact) {
	_, hadSelection := m.panel.Selected()
	if !m.panel.Delete(contact) {
		return
	}

	m.leaving = append(m.leaving, leavingRow{contact: contact, index: m.cursor})
	m.rows.Leave(contact.ID)
	if !m.rows.Active() {
		m.pruneLeaving(m.rows.Tick())
	}

	if _, ok := m.panel.Selected(); hadSelection && !ok {
		m.detail.Leave()
	}

	if m.cursor >= m.panel.Len() {
		m.cursor = m.panel.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.successMessage = fmt.Sprintf("Contact '%s' has been deleted.", contact.Name)
}

func (m *ContactsModel) pruneLeaving(gone []int64) {
	if len(gone) == 0 {
		return
	}

	done := make(map[int64]bool, len(gone))
	for _, id := range gone {
		done[id] = true
	}

	kept := m.leaving[:0]
	for _, row := range m.leaving {
		if !done[row.contact.ID] {
			kept = append(kept, row)
		}
	}
	m.leaving = kept
}

// animate schedules the next frame while any transition is moving
func (m *ContactsModel) animate() tea.Cmd {
	if m.ticking || !m.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.animCfg.Interval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Animating reports whether a row or the detail panel is mid-transition
func (m *ContactsModel) Animating() bool {
	return m.rows.Active() || !m.detail.Done()
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *ContactsModel) View() string {
	var content strings.Builder

	title := fmt.Sprintf("Contacts (%d)", m.panel.Len())
	content.WriteString(m.styles.Header.Width(m.width).Render(title))
	content.WriteString("\n\n")

	listWidth := m.width
	var detail string
	if m.detail.Visible() {
		detail = m.renderDetailPanel()
		listWidth -= lipgloss.Width(detail)
	}

	list := m.renderContactList(listWidth)
	if detail != "" {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	} else {
		content.WriteString(list)
	}
	content.WriteString("\n\n")

	if m.successMessage != "" {
		content.WriteString(m.styles.Status.Render("✓ " + m.successMessage))
		content.WriteString("\n")
	}

	content.WriteString(m.help.View(m.keys))

	return content.String()
}

type displayRow struct {
	contact models.Contact
	index   int
	leaving bool
}

// displayRows merges live contacts with rows that are still animating out
func (m *ContactsModel) displayRows() []displayRow {
	contacts := m.panel.Contacts()
	rows := make([]displayRow, 0, len(contacts)+len(m.leaving))
	for i, contact := range contacts {
		rows = append(rows, displayRow{contact: contact, index: i})
	}

	leaving := make([]leavingRow, len(m.leaving))
	copy(leaving, m.leaving)
	sort.SliceStable(leaving, func(i, j int) bool { return leaving[i].index < leaving[j].index })

	for _, row := range leaving {
		at := row.index
		if at > len(rows) {
			at = len(rows)
		}
		rows = append(rows, displayRow{})
		copy(rows[at+1:], rows[at:])
		rows[at] = displayRow{contact: row.contact, index: -1, leaving: true}
	}
	return rows
}

func (m *ContactsModel) renderContactList(width int) string {
	rows := m.displayRows()
	if len(rows) == 0 {
		return m.styles.Empty.Render("No contacts. Press a to add one.")
	}

	selected, hasSelection := m.panel.Selected()

	var items []string
	for _, row := range rows {
		isCursor := !row.leaving && row.index == m.cursor
		isSelected := !row.leaving && hasSelection && row.contact.ID == selected.ID
		items = append(items, m.renderContactItem(row, isCursor, isSelected, width))
	}
	return strings.Join(items, "\n")
}

func (m *ContactsModel) renderContactItem(row displayRow, isCursor, isSelected bool, width int) string {
	var style lipgloss.Style
	switch {
	case row.leaving:
		style = m.styles.Leaving
	case isCursor:
		style = m.styles.Cursor
	case isSelected:
		style = m.styles.Selected
	default:
		style = m.styles.Row
	}

	marker := "  "
	if isSelected {
		marker = "● "
	}

	indent := strings.Repeat(" ", utils.SlideOffset(m.rows.Progress(row.contact.ID), slideDistance))
	name := utils.PadString(utils.TruncateString(row.contact.Name, nameWidth), nameWidth, ' ')
	line := indent + marker + name + " " + m.styles.Email.Render(row.contact.Email)

	if width > 2 {
		line = utils.TruncateString(line, width-2)
		style = style.Width(width)
	}
	return style.Render(line)
}

func (m *ContactsModel) renderDetailPanel() string {
	contact, ok := m.panel.Selected()
	if !ok {
		contact = m.lastShow
	}

	inner := detailWidth - 4
	field := func(label, value string) string {
		return m.styles.DetailLabel.Render(label) +
			m.styles.DetailValue.Render(utils.TruncateString(value, inner-8))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.DetailTitle.Render(utils.TruncateString(contact.Name, inner)),
		"",
		field("Email", contact.Email),
		field("Avatar", contact.AvatarURL),
		field("ID", fmt.Sprintf("%d", contact.ID)),
	)

	reveal := utils.RevealWidth(m.detail.Progress(), inner)
	if reveal < 1 {
		reveal = 1
	}
	return m.styles.DetailPanel.Width(reveal).Render(body)
}
