package model

import "time"

type Event interface {
	GetId() string
}

// AuditEvent mirrors the logs collection document for downstream consumers.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	AdminID    string    `json:"admin_id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *AuditEvent) GetId() string {
	return e.EventID
}
