package usecase

import (
	"context"
	"errors"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	httpError "wasset-admin/src/pkg/http-error"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	AdminRepository repository.AdminRepository
}

func NewAuthUseCase(logger log.Log, validate *validator.Validate, adminRepository repository.AdminRepository) *AuthUseCase {
	return &AuthUseCase{
		Log:             logger,
		Validate:        validate,
		AdminRepository: adminRepository,
	}
}

// Login is server-side validation only. Tokens are issued by the identity
// provider; this just confirms the admin record exists, is active and the
// password matches.
func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("AuthUseCase.Login-validation", err.Error(), "request", request.Email)
		result.Error = validationError(err)
		return result
	}

	admin, err := c.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			result.Error = unauthorizedError()
			return result
		}
		c.Log.Error("AuthUseCase.Login-FindByEmail", err.Error(), "request", request.Email)
		result.Error = storeError(err, "المسؤول غير موجود")
		return result
	}

	if !admin.IsActive {
		result.Error = unauthorizedError()
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(request.Password)); err != nil {
		result.Error = unauthorizedError()
		return result
	}

	result.Data = map[string]interface{}{"email": admin.Email, "displayName": admin.DisplayName}
	return result
}

func unauthorizedError() *httpError.CommonError {
	errObj := httpError.NewUnauthorized()
	errObj.Message = "بيانات الدخول غير صحيحة"
	return errObj
}
