package http

import (
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type FeatureFlagController struct {
	Log     log.Log
	UseCase *usecase.FeatureFlagsUseCase
}

func NewFeatureFlagController(useCase *usecase.FeatureFlagsUseCase, logger log.Log) *FeatureFlagController {
	return &FeatureFlagController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *FeatureFlagController) Get(ctx *fiber.Ctx) error {
	result := c.UseCase.Get(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "", fiber.StatusOK, ctx)
}

func (c *FeatureFlagController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateFeatureFlagsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FeatureFlagController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Update(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم تحديث الإعدادات بنجاح", fiber.StatusOK, ctx)
}
