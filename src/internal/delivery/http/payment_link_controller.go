package http

import (
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentLinkController struct {
	Log     log.Log
	UseCase *usecase.PaymentLinkUseCase
}

func NewPaymentLinkController(useCase *usecase.PaymentLinkUseCase, logger log.Log) *PaymentLinkController {
	return &PaymentLinkController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentLinkController) List(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("PaymentLinkController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *PaymentLinkController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreatePaymentLinkRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentLinkController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "تم إنشاء رابط الدفع بنجاح", fiber.StatusOK, ctx)
}

func (c *PaymentLinkController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdatePaymentLinkRequest)
	request.ID = ctx.Params("id")
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentLinkController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Update(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم تحديث رابط الدفع بنجاح", fiber.StatusOK, ctx)
}

func (c *PaymentLinkController) Toggle(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Toggle(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "تم تحديث رابط الدفع بنجاح", fiber.StatusOK, ctx)
}
