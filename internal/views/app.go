package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/audit"
	"rhystmorgan/veContacts/internal/config"
	"rhystmorgan/veContacts/internal/models"
)

// AppModel is the root model. It owns the contact panel and forwards
// every message to it.
type AppModel struct {
	width  int
	height int

	logger       *zap.Logger
	auditor      *audit.ContactAuditor
	contactsView *ContactsModel
}

func NewAppModel(cfg *config.Config, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	auditor := audit.NewContactAuditor(logger, cfg.Audit.HistorySize)
	generator := models.NewContactGenerator(cfg.Panel.AvatarBaseURL, nil, nil)
	panel := models.NewListPanel(generator, cfg.Panel.SeedCount, auditor)

	return &AppModel{
		logger:       logger,
		auditor:      auditor,
		contactsView: NewContactsModel(panel, cfg.AnimationSettings()),
	}
}

func (m *AppModel) Init() tea.Cmd {
	m.logger.Info("contact panel started",
		zap.Int("contacts", m.contactsView.panel.Len()),
		zap.Bool("animations", m.contactsView.animCfg.Enabled),
	)
	return m.contactsView.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ContactCreatedMsg:
		m.logger.Info("contact added", zap.Int64("id", msg.Contact.ID), zap.String("name", msg.Contact.Name))
		return m, nil

	case ContactDeletedMsg:
		m.logger.Info("contact deleted", zap.Int64("id", msg.Contact.ID), zap.String("name", msg.Contact.Name))
		return m, nil
	}

	_, cmd := m.contactsView.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	return m.contactsView.View()
}

// Panel exposes the underlying list panel
func (m *AppModel) Panel() *models.ListPanel {
	return m.contactsView.panel
}

// Auditor exposes the audit trail of panel actions
func (m *AppModel) Auditor() *audit.ContactAuditor {
	return m.auditor
}

// Close flushes the audit trail and logger
func (m *AppModel) Close() error {
	return m.auditor.Close()
}
