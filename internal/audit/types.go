package audit

import (
	"time"
)

// AuditAction represents the type of action performed on the contact panel
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionDelete AuditAction = "delete"
	AuditActionSelect AuditAction = "select"
	AuditActionClear  AuditAction = "clear"
)

// AuditLog represents a single audit log entry
type AuditLog struct {
	Seq       uint64                 `json:"seq"`
	ContactID int64                  `json:"contact_id"`
	Action    AuditAction            `json:"action"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
