package models

import (
	"rhystmorgan/veContacts/internal/audit"
)

// ListPanel holds the contact sequence (newest first) and at most one
// selected contact. The selection is a detached copy of a list entry.
//
// A ListPanel is not safe for concurrent use; the bubbletea event loop
// serialises every call.
type ListPanel struct {
	list      ContactList
	selected  *Contact
	generator *ContactGenerator
	auditor   *audit.ContactAuditor
}

// NewListPanel seeds the panel with seedCount placeholder contacts. The
// auditor may be nil.
func NewListPanel(generator *ContactGenerator, seedCount int, auditor *audit.ContactAuditor) *ListPanel {
	if generator == nil {
		generator = NewContactGenerator("", nil, nil)
	}

	return &ListPanel{
		list:      ContactList{Contacts: generator.Seed(seedCount)},
		generator: generator,
		auditor:   auditor,
	}
}

// Select focuses a copy of contact, or clears the selection when contact is nil
func (p *ListPanel) Select(contact *Contact) {
	if contact == nil {
		if p.selected != nil && p.auditor != nil {
			p.auditor.LogContactAction(audit.AuditActionClear, p.selected.ID, nil)
		}
		p.selected = nil
		return
	}

	selected := *contact
	p.selected = &selected

	if p.auditor != nil {
		p.auditor.LogContactAction(audit.AuditActionSelect, selected.ID, nil)
	}
}

// Add prepends a freshly generated contact and selects it
func (p *ListPanel) Add() Contact {
	contact := p.generator.Next(p.list.Len())
	for p.list.FindByID(contact.ID) != nil {
		contact.ID++
	}

	p.list.Prepend(contact)

	if p.auditor != nil {
		details := map[string]interface{}{
			"name":  contact.Name,
			"email": contact.Email,
		}
		p.auditor.LogContactAction(audit.AuditActionCreate, contact.ID, details)
	}

	p.Select(&contact)
	return contact
}

// Delete removes the entry matching contact's id and clears the selection
// if it pointed at that entry. It reports whether anything was removed.
func (p *ListPanel) Delete(contact Contact) bool {
	removed, ok := p.list.Remove(contact.ID)
	if !ok {
		return false
	}

	if p.auditor != nil {
		p.auditor.LogContactAction(audit.AuditActionDelete, removed.ID, nil)
	}

	if p.selected != nil && p.selected.ID == removed.ID {
		p.Select(nil)
	}
	return true
}

// Contacts returns a copy of the sequence in display order
func (p *ListPanel) Contacts() []Contact {
	contacts := make([]Contact, len(p.list.Contacts))
	copy(contacts, p.list.Contacts)
	return contacts
}

func (p *ListPanel) At(index int) (Contact, bool) {
	if index < 0 || index >= p.list.Len() {
		return Contact{}, false
	}
	return p.list.Contacts[index], true
}

func (p *ListPanel) Selected() (Contact, bool) {
	if p.selected == nil {
		return Contact{}, false
	}
	return *p.selected, true
}

func (p *ListPanel) Len() int {
	return p.list.Len()
}
