package models

import "time"

// AuditLogEntry represents a single request to an authentication endpoint
type AuditLogEntry struct {
	ID        int64     `json:"id" db:"id"`
	EventID   string    `json:"event_id" db:"event_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	StaffID   string    `json:"staff_id,omitempty" db:"staff_id"`
	Method    string    `json:"method" db:"method"`
	Path      string    `json:"path" db:"path"`
	Query     string    `json:"query,omitempty" db:"query"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
}
