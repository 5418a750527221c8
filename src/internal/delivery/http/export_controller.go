package http

import (
	"fmt"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	Log     log.Log
	UseCase *usecase.ExportUseCase
}

func NewExportController(useCase *usecase.ExportUseCase, logger log.Log) *ExportController {
	return &ExportController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ExportController) Export(ctx *fiber.Ctx) error {
	request := &model.ExportRequest{
		Type:   ctx.Params("type"),
		Format: ctx.Query("format", "json"),
	}

	result := c.UseCase.Export(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	data := result.Data.(*model.ExportData)
	if data.Format == "csv" {
		ctx.Set(fiber.HeaderContentType, "text/csv")
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, data.FileName))
		return ctx.SendString(data.CSV)
	}

	message := fmt.Sprintf("تم تصدير %d سجل بنجاح", len(data.Records))
	return utils.Response(data.Records, message, fiber.StatusOK, ctx)
}
