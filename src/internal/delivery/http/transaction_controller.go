package http

import (
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionController struct {
	Log     log.Log
	UseCase *usecase.TransactionUseCase
}

func NewTransactionController(useCase *usecase.TransactionUseCase, logger log.Log) *TransactionController {
	return &TransactionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TransactionController) List(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("TransactionController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *TransactionController) Get(ctx *fiber.Ctx) error {
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "", fiber.StatusOK, ctx)
}

func (c *TransactionController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateTransactionRequest)
	request.ID = ctx.Params("id")
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpdateStatus(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم تحديث حالة المعاملة بنجاح", fiber.StatusOK, ctx)
}
