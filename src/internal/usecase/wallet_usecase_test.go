package usecase_test

import (
	"context"
	"testing"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/usecase"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestComputeWalletBalance(t *testing.T) {
	t.Run("commissions add, withdrawals subtract", func(t *testing.T) {
		entries := []entity.WalletTransaction{
			{Type: entity.WalletTypeCommission, Status: "completed", Amount: 100},
			{Type: entity.WalletTypeCommission, Status: "completed", Amount: 50},
			{Type: entity.WalletTypeWithdrawal, Status: "completed", Amount: 30},
		}

		assert.Equal(t, float64(120), usecase.ComputeWalletBalance(entries))
	})

	t.Run("pending entries never count", func(t *testing.T) {
		entries := []entity.WalletTransaction{
			{Type: entity.WalletTypeCommission, Status: "pending", Amount: 100},
			{Type: entity.WalletTypeWithdrawal, Status: "failed", Amount: 30},
		}

		assert.Equal(t, float64(0), usecase.ComputeWalletBalance(entries))
	})

	t.Run("deposits and escrow movements are user money, not platform money", func(t *testing.T) {
		entries := []entity.WalletTransaction{
			{Type: entity.WalletTypeDeposit, Status: "completed", Amount: 500},
			{Type: entity.WalletTypeEscrowHold, Status: "completed", Amount: 200},
			{Type: entity.WalletTypeEscrowRelease, Status: "completed", Amount: 200},
		}

		assert.Equal(t, float64(0), usecase.ComputeWalletBalance(entries))
	})

	t.Run("empty ledger", func(t *testing.T) {
		assert.Equal(t, float64(0), usecase.ComputeWalletBalance(nil))
	})
}

func TestWalletUseCaseBalance(t *testing.T) {
	cfg := viper.New()
	cfg.SetDefault("dashboard.scan.limit", 1000)

	walletRepo := new(MockWalletRepository)
	service := usecase.NewWalletUseCase(newTestLogger(), walletRepo, cfg)

	walletRepo.On("ListAllTransactions", mock.Anything, 1000).Return([]entity.WalletTransaction{
		{Type: entity.WalletTypeCommission, Status: "completed", Amount: 80},
		{Type: entity.WalletTypeWithdrawal, Status: "completed", Amount: 20},
	}, nil)

	result := service.Balance(context.Background())

	assert.NoError(t, result.Error)
	response := result.Data.(*model.WalletBalanceResponse)
	assert.Equal(t, float64(60), response.Balance)
	walletRepo.AssertExpectations(t)
}
