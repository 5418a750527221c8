package messaging

import (
	"wasset-admin/src/internal/model"
	"wasset-admin/src/pkg/kafka"
	"wasset-admin/src/pkg/log"
)

type AuditProducer struct {
	AdminActionProducer Producer[*model.AuditEvent]
}

func NewAuditProducer(producer kafka.Producer, log log.Log) *AuditProducer {
	return &AuditProducer{
		AdminActionProducer: Producer[*model.AuditEvent]{
			Producer: producer,
			Topic:    "admin-audit",
			Log:      log,
		},
	}
}

func (a *AuditProducer) SendAdminAction(event *model.AuditEvent) error {
	return a.AdminActionProducer.Send(event)
}
