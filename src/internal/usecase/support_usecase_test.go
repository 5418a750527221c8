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

func newSupportUseCase(repo *MockSupportTicketRepository) *usecase.SupportUseCase {
	return usecase.NewSupportUseCase(newTestLogger(), validator.New(), repo, newTestAudit())
}

func TestSupportUseCaseUpdate(t *testing.T) {
	t.Run("terminal status stamps resolvedAt", func(t *testing.T) {
		repo := new(MockSupportTicketRepository)
		service := newSupportUseCase(repo)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "s1", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Update(context.Background(), "admin-1", &model.UpdateSupportTicketRequest{
			ID:     "s1",
			Status: "resolved",
		})

		assert.NoError(t, result.Error)
		assert.Equal(t, "resolved", written["status"])
		assert.Contains(t, written, "resolvedAt")
	})

	t.Run("non-terminal status leaves resolvedAt alone", func(t *testing.T) {
		repo := new(MockSupportTicketRepository)
		service := newSupportUseCase(repo)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "s2", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Update(context.Background(), "admin-1", &model.UpdateSupportTicketRequest{
			ID:     "s2",
			Status: "in_progress",
		})

		assert.NoError(t, result.Error)
		assert.NotContains(t, written, "resolvedAt")
	})

	t.Run("reply stamps repliedAt and repliedBy", func(t *testing.T) {
		repo := new(MockSupportTicketRepository)
		service := newSupportUseCase(repo)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "s3", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Update(context.Background(), "admin-7", &model.UpdateSupportTicketRequest{
			ID:         "s3",
			Status:     "open",
			AdminReply: "تم حل المشكلة",
		})

		assert.NoError(t, result.Error)
		assert.Equal(t, "تم حل المشكلة", written["adminReply"])
		assert.Equal(t, "admin-7", written["repliedBy"])
		assert.Contains(t, written, "repliedAt")
	})
}
