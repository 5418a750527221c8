package usecase

import (
	"context"
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/model/converter"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type PaymentLinkUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	PaymentLinkRepository repository.PaymentLinkRepository
	Audit                 *AuditTrail
	Config                *viper.Viper
}

func NewPaymentLinkUseCase(
	logger log.Log,
	validate *validator.Validate,
	paymentLinkRepository repository.PaymentLinkRepository,
	audit *AuditTrail,
	cfg *viper.Viper,
) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{
		Log:                   logger,
		Validate:              validate,
		PaymentLinkRepository: paymentLinkRepository,
		Audit:                 audit,
		Config:                cfg,
	}
}

func (c *PaymentLinkUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	links, total, err := c.PaymentLinkRepository.List(ctx, repository.ListOptions{
		Page:   request.Page,
		Limit:  request.Limit,
		Search: request.Search,
	})
	if err != nil {
		c.Log.Error("PaymentLinkUseCase.List", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "رابط الدفع غير موجود")
		return result
	}

	result.Data = converter.PaymentLinksToResponse(links)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

func (c *PaymentLinkUseCase) Create(ctx context.Context, adminID string, request *model.CreatePaymentLinkRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("PaymentLinkUseCase.Create-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = validationError(err)
		return result
	}

	now := time.Now()
	active := true
	link := &entity.PaymentLink{
		ID:          uuid.NewString(),
		Title:       request.Title,
		Description: request.Description,
		Amount:      request.Amount,
		Commission:  request.Amount * c.Config.GetFloat64("commission.rate"),
		IsActive:    &active,
		ShortCode:   uuid.NewString()[:8],
		CreatedBy:   adminID,
		CreatedAt:   now,
	}
	link.TotalAmount = link.Amount + link.Commission

	if request.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, request.ExpiresAt)
		if err != nil {
			result.Error = validationError(err)
			return result
		}
		link.ExpiresAt = &expiresAt
	}

	if err := c.PaymentLinkRepository.Insert(ctx, link); err != nil {
		c.Log.Error("PaymentLinkUseCase.Create", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "رابط الدفع غير موجود")
		return result
	}

	c.Audit.Record(ctx, adminID, "payment_link.create", "payment_links", link.ID)
	result.Data = converter.PaymentLinkToResponse(link)
	return result
}

func (c *PaymentLinkUseCase) Update(ctx context.Context, adminID string, request *model.UpdatePaymentLinkRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	fields := map[string]interface{}{}
	if request.Title != "" {
		fields["title"] = request.Title
	}
	if request.Description != "" {
		fields["description"] = request.Description
	}
	if request.Amount != nil {
		fields["amount"] = *request.Amount
	}
	if request.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, request.ExpiresAt)
		if err != nil {
			result.Error = validationError(err)
			return result
		}
		fields["expiresAt"] = expiresAt
	}

	if err := c.PaymentLinkRepository.Update(ctx, request.ID, fields); err != nil {
		c.Log.Error("PaymentLinkUseCase.Update", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "رابط الدفع غير موجود")
		return result
	}

	c.Audit.Record(ctx, adminID, "payment_link.update", "payment_links", request.ID)
	return result
}

// Toggle flips isActive and stamps updatedAt; nothing else on the document
// moves. Toggling twice lands back on the original state.
func (c *PaymentLinkUseCase) Toggle(ctx context.Context, adminID string, request *model.IDRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	link, err := c.PaymentLinkRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("PaymentLinkUseCase.Toggle-FindByID", err.Error(), "request", request.ID)
		result.Error = storeError(err, "رابط الدفع غير موجود")
		return result
	}

	next := !converter.PaymentLinkIsActive(link)
	if err := c.PaymentLinkRepository.Update(ctx, request.ID, map[string]interface{}{"isActive": next}); err != nil {
		c.Log.Error("PaymentLinkUseCase.Toggle", err.Error(), "request", request.ID)
		result.Error = storeError(err, "رابط الدفع غير موجود")
		return result
	}

	c.Audit.Record(ctx, adminID, "payment_link.toggle", "payment_links", request.ID)
	result.Data = map[string]interface{}{"id": request.ID, "isActive": next}
	return result
}
