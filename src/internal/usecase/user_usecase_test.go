package usecase_test

import (
	"context"
	"testing"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserUseCaseBlock(t *testing.T) {
	t.Run("block sets the flag and stamps blockedAt", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := usecase.NewUserUseCase(newTestLogger(), validator.New(), repo, newTestAudit())

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "u1", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Block(context.Background(), "admin-1", &model.IDRequest{ID: "u1"})

		assert.NoError(t, result.Error)
		assert.Equal(t, true, written["isBlocked"])
		assert.NotNil(t, written["blockedAt"])
		assert.Len(t, written, 2)
	})

	t.Run("unblock clears both", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := usecase.NewUserUseCase(newTestLogger(), validator.New(), repo, newTestAudit())

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "u1", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Unblock(context.Background(), "admin-1", &model.IDRequest{ID: "u1"})

		assert.NoError(t, result.Error)
		assert.Equal(t, false, written["isBlocked"])
		assert.Nil(t, written["blockedAt"])
	})

	t.Run("missing id never reaches the store", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := usecase.NewUserUseCase(newTestLogger(), validator.New(), repo, newTestAudit())

		result := service.Block(context.Background(), "admin-1", &model.IDRequest{})

		assert.Error(t, result.Error)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
