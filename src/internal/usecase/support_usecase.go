package usecase

import (
	"context"
	"time"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/model/converter"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type SupportUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	TicketRepository repository.SupportTicketRepository
	Audit            *AuditTrail
}

func NewSupportUseCase(
	logger log.Log,
	validate *validator.Validate,
	ticketRepository repository.SupportTicketRepository,
	audit *AuditTrail,
) *SupportUseCase {
	return &SupportUseCase{
		Log:              logger,
		Validate:         validate,
		TicketRepository: ticketRepository,
		Audit:            audit,
	}
}

func (c *SupportUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	tickets, total, err := c.TicketRepository.List(ctx, repository.ListOptions{
		Page:   request.Page,
		Limit:  request.Limit,
		Status: request.Status,
	})
	if err != nil {
		c.Log.Error("SupportUseCase.List", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "تذكرة الدعم غير موجودة")
		return result
	}

	result.Data = converter.SupportTicketsToResponse(tickets)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

// Update writes the canonical status vocabulary; legacy documents are only
// ever normalized on the read path. A terminal status stamps resolvedAt, a
// reply stamps repliedAt/repliedBy.
func (c *SupportUseCase) Update(ctx context.Context, adminID string, request *model.UpdateSupportTicketRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("SupportUseCase.Update-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = validationError(err)
		return result
	}

	now := time.Now()
	fields := map[string]interface{}{"status": request.Status}
	if isTerminalTicketStatus(request.Status) {
		fields["resolvedAt"] = now
	}
	if request.AdminReply != "" {
		fields["adminReply"] = request.AdminReply
		fields["repliedAt"] = now
		fields["repliedBy"] = adminID
	}

	if err := c.TicketRepository.Update(ctx, request.ID, fields); err != nil {
		c.Log.Error("SupportUseCase.Update", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "تذكرة الدعم غير موجودة")
		return result
	}

	c.Audit.Record(ctx, adminID, "support_ticket.update", "support_tickets", request.ID)
	return result
}

func isTerminalTicketStatus(status string) bool {
	switch status {
	case "resolved", "closed", "completed":
		return true
	}
	return false
}
