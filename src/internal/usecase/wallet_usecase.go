package usecase

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/model/converter"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/spf13/viper"
)

type WalletUseCase struct {
	Log              log.Log
	WalletRepository repository.WalletRepository
	Config           *viper.Viper
}

func NewWalletUseCase(logger log.Log, walletRepository repository.WalletRepository, cfg *viper.Viper) *WalletUseCase {
	return &WalletUseCase{
		Log:              logger,
		WalletRepository: walletRepository,
		Config:           cfg,
	}
}

func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	transactions, total, err := c.WalletRepository.ListTransactions(ctx, repository.ListOptions{
		Page:   request.Page,
		Limit:  request.Limit,
		Status: request.Status,
	})
	if err != nil {
		c.Log.Error("WalletUseCase.ListTransactions", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "معاملة المحفظة غير موجودة")
		return result
	}

	result.Data = converter.WalletTransactionsToResponse(transactions)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

func (c *WalletUseCase) ListWallets(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result
	request.Normalize()

	wallets, total, err := c.WalletRepository.ListWallets(ctx, repository.ListOptions{
		Page:  request.Page,
		Limit: request.Limit,
	})
	if err != nil {
		c.Log.Error("WalletUseCase.ListWallets", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "المحفظة غير موجودة")
		return result
	}

	result.Data = converter.WalletsToResponse(wallets)
	result.Pagination = utils.NewPagination(request.Page, request.Limit, total)
	return result
}

// Balance recomputes the platform balance from the ledger on every call.
// The ledger is the source of truth; the denormalized balance fields on
// wallet documents are display-only.
func (c *WalletUseCase) Balance(ctx context.Context) utils.Result {
	var result utils.Result

	entries, err := c.WalletRepository.ListAllTransactions(ctx, c.Config.GetInt("dashboard.scan.limit"))
	if err != nil {
		c.Log.Error("WalletUseCase.Balance", err.Error(), "scan", "")
		result.Error = storeError(err, "المحفظة غير موجودة")
		return result
	}

	result.Data = &model.WalletBalanceResponse{Balance: ComputeWalletBalance(entries)}
	return result
}

// ComputeWalletBalance sums completed commissions and subtracts completed
// withdrawals. Pending and failed entries never count.
func ComputeWalletBalance(entries []entity.WalletTransaction) float64 {
	var balance float64
	for i := range entries {
		entry := &entries[i]
		if entry.Status != "completed" {
			continue
		}
		switch entry.Type {
		case entity.WalletTypeCommission:
			balance += entry.Amount
		case entity.WalletTypeWithdrawal:
			balance -= entry.Amount
		}
	}
	return balance
}
