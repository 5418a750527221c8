package usecase

import (
	"context"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/model/converter"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type TransactionUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	TransactionRepository repository.TransactionRepository
	Audit                 *AuditTrail
}

func NewTransactionUseCase(
	logger log.Log,
	validate *validator.Validate,
	transactionRepository repository.TransactionRepository,
	audit *AuditTrail,
) *TransactionUseCase {
	return &TransactionUseCase{
		Log:                   logger,
		Validate:              validate,
		TransactionRepository: transactionRepository,
		Audit:                 audit,
	}
}

func (c *TransactionUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	transactions, total, err := c.TransactionRepository.List(ctx, repository.ListOptions{
		Page:   request.Page,
		Limit:  request.Limit,
		Status: request.Status,
		Search: request.Search,
	})
	if err != nil {
		c.Log.Error("TransactionUseCase.List", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "المعاملة غير موجودة")
		return result
	}

	result.Data = converter.TransactionsToResponse(transactions)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

func (c *TransactionUseCase) Get(ctx context.Context, request *model.IDRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	transaction, err := c.TransactionRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("TransactionUseCase.Get-FindByID", err.Error(), "request", request.ID)
		result.Error = storeError(err, "المعاملة غير موجودة")
		return result
	}

	result.Data = converter.TransactionToResponse(transaction)
	return result
}

// UpdateStatus overwrites the status field with whatever the admin chose.
// There is no transition validation, and no wallet entry or user counter is
// touched here; those live in their own collections and are written by
// separate calls.
func (c *TransactionUseCase) UpdateStatus(ctx context.Context, adminID string, request *model.UpdateTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("TransactionUseCase.UpdateStatus-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = validationError(err)
		return result
	}

	fields := map[string]interface{}{"status": request.Status}
	if request.AdminNotes != "" {
		fields["adminNotes"] = request.AdminNotes
	}

	if err := c.TransactionRepository.Update(ctx, request.ID, fields); err != nil {
		c.Log.Error("TransactionUseCase.UpdateStatus", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "المعاملة غير موجودة")
		return result
	}

	c.Audit.Record(ctx, adminID, "transaction.update_status", "transactions", request.ID)
	return result
}
