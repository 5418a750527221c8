package usecase

import (
	"context"
	"time"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/model/converter"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository repository.UserRepository
	Audit          *AuditTrail
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserRepository,
	audit *AuditTrail,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Audit:          audit,
	}
}

func (c *UserUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	users, total, err := c.UserRepository.List(ctx, repository.ListOptions{
		Page:   request.Page,
		Limit:  request.Limit,
		Search: request.Search,
	})
	if err != nil {
		c.Log.Error("UserUseCase.List", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	result.Data = converter.UsersToResponse(users)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

func (c *UserUseCase) Get(ctx context.Context, request *model.IDRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("UserUseCase.Get-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = validationError(err)
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("UserUseCase.Get-FindByID", err.Error(), "request", request.ID)
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Update(ctx context.Context, adminID string, request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("UserUseCase.Update-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = validationError(err)
		return result
	}

	fields := map[string]interface{}{
		"displayName": request.DisplayName,
		"email":       request.Email,
		"phone":       request.Phone,
		"status":      request.Status,
	}
	if err := c.UserRepository.Update(ctx, request.ID, fields); err != nil {
		c.Log.Error("UserUseCase.Update", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	c.Audit.Record(ctx, adminID, "user.update", "users", request.ID)
	return result
}

func (c *UserUseCase) Delete(ctx context.Context, adminID string, request *model.IDRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	if err := c.UserRepository.Delete(ctx, request.ID); err != nil {
		c.Log.Error("UserUseCase.Delete", err.Error(), "request", request.ID)
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	c.Audit.Record(ctx, adminID, "user.delete", "users", request.ID)
	return result
}

// Block flips the isBlocked flag. No cascading effect on the user's
// transactions or wallet.
func (c *UserUseCase) Block(ctx context.Context, adminID string, request *model.IDRequest) utils.Result {
	return c.setBlocked(ctx, adminID, request, true)
}

func (c *UserUseCase) Unblock(ctx context.Context, adminID string, request *model.IDRequest) utils.Result {
	return c.setBlocked(ctx, adminID, request, false)
}

func (c *UserUseCase) setBlocked(ctx context.Context, adminID string, request *model.IDRequest, blocked bool) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	fields := map[string]interface{}{"isBlocked": blocked}
	if blocked {
		fields["blockedAt"] = time.Now()
	} else {
		fields["blockedAt"] = nil
	}

	if err := c.UserRepository.Update(ctx, request.ID, fields); err != nil {
		c.Log.Error("UserUseCase.setBlocked", err.Error(), "request", request.ID)
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	action := "user.block"
	if !blocked {
		action = "user.unblock"
	}
	c.Audit.Record(ctx, adminID, action, "users", request.ID)
	return result
}
