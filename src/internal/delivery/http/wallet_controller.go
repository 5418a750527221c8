package http

import (
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("WalletController.ListTransactions", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ListTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *WalletController) ListWallets(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("WalletController.ListWallets", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ListWallets(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *WalletController) Balance(ctx *fiber.Ctx) error {
	result := c.UseCase.Balance(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "", fiber.StatusOK, ctx)
}
