package usecase

import (
	"context"
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/gateway/messaging"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"

	"github.com/google/uuid"
)

// AuditTrail records admin mutations in the logs collection and, when a
// producer is configured, publishes them for downstream consumers. Both are
// fire-and-forget: an audit failure never fails the admin action.
type AuditTrail struct {
	Log      log.Log
	Repo     repository.AuditRepository
	Producer *messaging.AuditProducer
}

func NewAuditTrail(logger log.Log, repo repository.AuditRepository, producer *messaging.AuditProducer) *AuditTrail {
	return &AuditTrail{
		Log:      logger,
		Repo:     repo,
		Producer: producer,
	}
}

func (a *AuditTrail) Record(ctx context.Context, adminID, action, resource, resourceID string) {
	entry := &entity.AuditLog{
		ID:         uuid.NewString(),
		AdminID:    adminID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  time.Now(),
	}

	if err := a.Repo.Insert(ctx, entry); err != nil {
		a.Log.Error("audit-trail", "failed to write audit log", action, err.Error())
	}

	if a.Producer == nil {
		return
	}
	event := &model.AuditEvent{
		EventID:    entry.ID,
		AdminID:    adminID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  entry.CreatedAt,
	}
	if err := a.Producer.SendAdminAction(event); err != nil {
		a.Log.Error("audit-trail", "failed to publish audit event", action, err.Error())
	}
}
