package usecase_test

import (
	"context"
	"testing"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentLinkUseCase(repo *MockPaymentLinkRepository) *usecase.PaymentLinkUseCase {
	cfg := viper.New()
	cfg.SetDefault("commission.rate", 0.02)
	return usecase.NewPaymentLinkUseCase(newTestLogger(), validator.New(), repo, newTestAudit(), cfg)
}

func TestPaymentLinkUseCaseCreate(t *testing.T) {
	t.Run("commission and total derive from the amount", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		var inserted *entity.PaymentLink
		repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.PaymentLink)
		}).Return(nil)

		result := service.Create(context.Background(), "admin-1", &model.CreatePaymentLinkRequest{
			Title:  "دفعة مقدمة",
			Amount: 500,
		})

		assert.NoError(t, result.Error)
		assert.NotNil(t, inserted)
		assert.InDelta(t, 10, inserted.Commission, 1e-9)
		assert.InDelta(t, 510, inserted.TotalAmount, 1e-9)
		assert.Len(t, inserted.ShortCode, 8)
		assert.NotNil(t, inserted.IsActive)
		assert.True(t, *inserted.IsActive)
		assert.Equal(t, "admin-1", inserted.CreatedBy)
	})

	t.Run("missing title is rejected before the store", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		result := service.Create(context.Background(), "admin-1", &model.CreatePaymentLinkRequest{Amount: 100})

		assert.Error(t, result.Error)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("malformed expiry is rejected", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		result := service.Create(context.Background(), "admin-1", &model.CreatePaymentLinkRequest{
			Title:     "x",
			Amount:    100,
			ExpiresAt: "not-a-date",
		})

		assert.Error(t, result.Error)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestPaymentLinkUseCaseToggle(t *testing.T) {
	t.Run("only the active flag moves", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		active := true
		repo.On("FindByID", mock.Anything, "pl1").Return(&entity.PaymentLink{ID: "pl1", IsActive: &active}, nil)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "pl1", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Toggle(context.Background(), "admin-1", &model.IDRequest{ID: "pl1"})

		assert.NoError(t, result.Error)
		assert.Equal(t, map[string]interface{}{"isActive": false}, written)
	})

	t.Run("documents without the flag read as active and toggle off", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		repo.On("FindByID", mock.Anything, "pl2").Return(&entity.PaymentLink{ID: "pl2"}, nil)

		var written map[string]interface{}
		repo.On("Update", mock.Anything, "pl2", mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(map[string]interface{})
		}).Return(nil)

		result := service.Toggle(context.Background(), "admin-1", &model.IDRequest{ID: "pl2"})

		assert.NoError(t, result.Error)
		assert.Equal(t, false, written["isActive"])
	})

	t.Run("toggling twice lands on the original state", func(t *testing.T) {
		repo := new(MockPaymentLinkRepository)
		service := newPaymentLinkUseCase(repo)

		state := true
		repo.On("FindByID", mock.Anything, "pl3").Return(&entity.PaymentLink{ID: "pl3", IsActive: &state}, nil)
		repo.On("Update", mock.Anything, "pl3", mock.Anything).Run(func(args mock.Arguments) {
			next := args.Get(2).(map[string]interface{})["isActive"].(bool)
			state = next
		}).Return(nil)

		service.Toggle(context.Background(), "admin-1", &model.IDRequest{ID: "pl3"})
		service.Toggle(context.Background(), "admin-1", &model.IDRequest{ID: "pl3"})

		assert.True(t, state)
	})
}
