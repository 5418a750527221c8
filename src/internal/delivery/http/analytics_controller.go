package http

import (
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Log     log.Log
	UseCase *usecase.AnalyticsUseCase
}

func NewAnalyticsController(useCase *usecase.AnalyticsUseCase, logger log.Log) *AnalyticsController {
	return &AnalyticsController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AnalyticsController) Dashboard(ctx *fiber.Ctx) error {
	result := c.UseCase.Dashboard(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "", fiber.StatusOK, ctx)
}
