package converter

import (
	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
)

func WalletToResponse(wallet *entity.Wallet) *model.WalletResponse {
	currency := wallet.Currency
	if currency == "" {
		currency = "EGP"
	}

	userID := wallet.UserID
	if userID == "" {
		userID = wallet.ID
	}

	return &model.WalletResponse{
		ID:               wallet.ID,
		UserID:           userID,
		Balance:          wallet.Balance,
		AvailableBalance: wallet.AvailableBalance,
		HoldBalance:      wallet.HoldBalance,
		TotalDeposits:    wallet.TotalDeposits,
		TotalWithdrawals: wallet.TotalWithdrawals,
		Currency:         currency,
		CreatedAt:        wallet.CreatedAt,
		UpdatedAt:        wallet.UpdatedAt,
	}
}

func WalletsToResponse(wallets []entity.Wallet) []*model.WalletResponse {
	responses := make([]*model.WalletResponse, 0, len(wallets))
	for i := range wallets {
		responses = append(responses, WalletToResponse(&wallets[i]))
	}
	return responses
}

func WalletTransactionToResponse(tx *entity.WalletTransaction) *model.WalletTransactionResponse {
	txType := tx.Type
	if txType == "" {
		txType = "unknown"
	}

	status := tx.Status
	if status == "" {
		status = "pending"
	}

	return &model.WalletTransactionResponse{
		ID:            tx.ID,
		UserID:        tx.UserID,
		Type:          txType,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Status:        status,
		TransactionID: tx.TransactionID,
		BankAccount:   tx.BankAccount,
		CreatedAt:     tx.CreatedAt,
	}
}

func WalletTransactionsToResponse(txs []entity.WalletTransaction) []*model.WalletTransactionResponse {
	responses := make([]*model.WalletTransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, WalletTransactionToResponse(&txs[i]))
	}
	return responses
}
