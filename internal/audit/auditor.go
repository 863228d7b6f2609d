package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultHistorySize = 100

// ContactAuditor keeps a bounded in-memory trail of panel actions and
// mirrors every entry to the logger.
type ContactAuditor struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	limit   int
	seq     uint64
	entries []AuditLog
	now     func() time.Time
}

// NewContactAuditor creates a new ContactAuditor instance. A non-positive
// historySize falls back to the default.
func NewContactAuditor(logger *zap.Logger, historySize int) *ContactAuditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if historySize <= 0 {
		historySize = defaultHistorySize
	}

	return &ContactAuditor{
		logger:  logger.Named("audit"),
		limit:   historySize,
		entries: make([]AuditLog, 0, historySize),
		now:     time.Now,
	}
}

// LogContactAction records an action against a contact
func (a *ContactAuditor) LogContactAction(action AuditAction, contactID int64, details map[string]interface{}) {
	a.mu.Lock()
	a.seq++
	log := AuditLog{
		Seq:       a.seq,
		ContactID: contactID,
		Action:    action,
		Timestamp: a.now(),
		Details:   details,
	}

	// Drop the oldest entry once the trail is full
	if len(a.entries) >= a.limit {
		copy(a.entries, a.entries[1:])
		a.entries = a.entries[:len(a.entries)-1]
	}
	a.entries = append(a.entries, log)
	a.mu.Unlock()

	fields := []zap.Field{
		zap.Uint64("seq", log.Seq),
		zap.String("action", string(action)),
		zap.Int64("contact_id", contactID),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("details", details))
	}
	a.logger.Debug("contact action", fields...)
}

// History returns a copy of the retained entries, oldest first
func (a *ContactAuditor) History() []AuditLog {
	a.mu.RLock()
	defer a.mu.RUnlock()

	logs := make([]AuditLog, len(a.entries))
	copy(logs, a.entries)
	return logs
}

// GetContactHistory retrieves the retained entries for a specific contact
func (a *ContactAuditor) GetContactHistory(contactID int64) []AuditLog {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var logs []AuditLog
	for _, log := range a.entries {
		if log.ContactID == contactID {
			logs = append(logs, log)
		}
	}
	return logs
}

// Len reports how many entries are retained
func (a *ContactAuditor) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Close flushes the underlying logger
func (a *ContactAuditor) Close() error {
	return a.logger.Sync()
}
