package usecase_test

import (
	"context"
	"testing"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTransactionUseCase(repo *MockTransactionRepository) *usecase.TransactionUseCase {
	return usecase.NewTransactionUseCase(newTestLogger(), validator.New(), repo, newTestAudit())
}

func TestTransactionUseCaseList(t *testing.T) {
	t.Run("status filter and search reach the store", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		service := newTransactionUseCase(repo)

		repo.On("List", mock.Anything, repository.ListOptions{
			Page:   2,
			Limit:  20,
			Status: "escrow",
			Search: "هاتف",
		}).Return([]entity.Transaction{{ID: "t1", Status: "escrow"}}, int64(21), nil)

		result := service.List(context.Background(), &model.ListRequest{
			Page:   2,
			Limit:  20,
			Status: "escrow",
			Search: "هاتف",
		})

		assert.NoError(t, result.Error)
		assert.Equal(t, int64(21), result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.Pages)
		repo.AssertExpectations(t)
	})

	t.Run("status all is stripped before the query", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		service := newTransactionUseCase(repo)

		repo.On("List", mock.Anything, repository.ListOptions{Page: 1, Limit: 10}).
			Return([]entity.Transaction{}, int64(0), nil)

		result := service.List(context.Background(), &model.ListRequest{Status: "all"})

		assert.NoError(t, result.Error)
		repo.AssertExpectations(t)
	})
}

func TestTransactionUseCaseUpdateStatus(t *testing.T) {
	t.Run("status overwrites without transition checks", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		service := newTransactionUseCase(repo)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "t1", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.UpdateStatus(context.Background(), "admin-1", &model.UpdateTransactionRequest{
			ID:     "t1",
			Status: "cancelled",
		})

		assert.NoError(t, result.Error)
		assert.Equal(t, map[string]interface{}{"status": "cancelled"}, written)
	})

	t.Run("admin notes ride along when present", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		service := newTransactionUseCase(repo)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "t2", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.UpdateStatus(context.Background(), "admin-1", &model.UpdateTransactionRequest{
			ID:         "t2",
			Status:     "disputed",
			AdminNotes: "بانتظار رد البائع",
		})

		assert.NoError(t, result.Error)
		assert.Equal(t, "بانتظار رد البائع", written["adminNotes"])
	})

	t.Run("missing status is rejected", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		service := newTransactionUseCase(repo)

		result := service.UpdateStatus(context.Background(), "admin-1", &model.UpdateTransactionRequest{ID: "t3"})

		assert.Error(t, result.Error)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
