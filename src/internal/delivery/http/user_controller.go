package http

import (
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
}

func NewUserController(useCase *usecase.UserUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *UserController) List(ctx *fiber.Ctx) error {
	request := new(model.ListRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("UserController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.ResponsePaginated(result, "", ctx)
}

func (c *UserController) Get(ctx *fiber.Ctx) error {
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "", fiber.StatusOK, ctx)
}

func (c *UserController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateUserRequest)
	request.ID = ctx.Params("id")
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Update(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم تحديث بيانات المستخدم بنجاح", fiber.StatusOK, ctx)
}

func (c *UserController) Delete(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Delete(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم حذف المستخدم بنجاح", fiber.StatusOK, ctx)
}

func (c *UserController) Block(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Block(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم حظر المستخدم بنجاح", fiber.StatusOK, ctx)
}

func (c *UserController) Unblock(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.IDRequest{ID: ctx.Params("id")}

	result := c.UseCase.Unblock(ctx.Context(), auth.Metadata.AdminID, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "تم إلغاء حظر المستخدم بنجاح", fiber.StatusOK, ctx)
}
