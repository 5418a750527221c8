package converter

import (
	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
)

func TransactionToResponse(tx *entity.Transaction) *model.TransactionResponse {
	title := tx.Title
	if title == "" {
		title = "معاملة بدون عنوان"
	}

	status := tx.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}

	buyerName := tx.BuyerName
	if buyerName == "" {
		buyerName = "غير محدد"
	}
	sellerName := tx.SellerName
	if sellerName == "" {
		sellerName = "غير محدد"
	}

	paymentMethod := tx.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "غير محدد"
	}

	return &model.TransactionResponse{
		ID:            tx.ID,
		Title:         title,
		Description:   tx.Description,
		Category:      tx.Category,
		Amount:        tx.Amount,
		Commission:    tx.Commission,
		Status:        status,
		PaymentMethod: paymentMethod,
		BuyerID:       tx.BuyerID,
		BuyerName:     buyerName,
		BuyerEmail:    tx.BuyerEmail,
		SellerID:      tx.SellerID,
		SellerName:    sellerName,
		SellerEmail:   tx.SellerEmail,
		AdminNotes:    tx.AdminNotes,
		CreatedAt:     tx.CreatedAt,
		CompletedAt:   tx.CompletedAt,
	}
}

func TransactionsToResponse(txs []entity.Transaction) []*model.TransactionResponse {
	responses := make([]*model.TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, TransactionToResponse(&txs[i]))
	}
	return responses
}
