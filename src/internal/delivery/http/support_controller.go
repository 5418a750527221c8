package http

import (
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SupportController struct {
	Log     log.Log
	UseCase *usecase.SupportUseCase
}

func NewSupportController(useCase *usecase.SupportUseCase, logger log.Log) *SupportController {
	return &SupportController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SupportController) List(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("SupportController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *SupportController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateSupportTicketRequest)
	request.ID = ctx.Params("id")
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SupportController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Update(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم تحديث تذكرة الدعم بنجاح", fiber.StatusOK, ctx)
}
