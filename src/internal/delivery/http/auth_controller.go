package http

import (
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Log     log.Log
	UseCase *usecase.AuthUseCase
}

func NewAuthController(useCase *usecase.AuthUseCase, logger log.Log) *AuthController {
	return &AuthController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "تم تسجيل الدخول بنجاح", fiber.StatusOK, ctx)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	return utils.Response(nil, "تم تسجيل الخروج بنجاح", fiber.StatusOK, ctx)
}
