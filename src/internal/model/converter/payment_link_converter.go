package converter

import (
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
)

// PaymentLinkIsActive reads the stored flag; documents written before the
// flag existed count as active.
func PaymentLinkIsActive(link *entity.PaymentLink) bool {
	return link.IsActive == nil || *link.IsActive
}

// PaymentLinkStatus derives the display status from the active flag and the
// expiry. Usage counters intentionally do not expire a link.
func PaymentLinkStatus(link *entity.PaymentLink, now time.Time) string {
	if !PaymentLinkIsActive(link) {
		return "inactive"
	}
	if link.ExpiresAt != nil && link.ExpiresAt.Before(now) {
		return "expired"
	}
	return "active"
}

func PaymentLinkToResponse(link *entity.PaymentLink) *model.PaymentLinkResponse {
	sellerName := link.SellerName
	if sellerName == "" {
		sellerName = "غير محدد"
	}

	totalAmount := link.TotalAmount
	if totalAmount == 0 {
		totalAmount = link.Amount
	}

	return &model.PaymentLinkResponse{
		ID:                    link.ID,
		SellerID:              link.SellerID,
		SellerName:            sellerName,
		Title:                 link.Title,
		Description:           link.Description,
		Amount:                link.Amount,
		Commission:            link.Commission,
		TotalAmount:           totalAmount,
		IsActive:              PaymentLinkIsActive(link),
		Status:                PaymentLinkStatus(link, time.Now()),
		ClickCount:            link.ClickCount,
		CompletedTransactions: link.CompletedTransactions,
		ShortCode:             link.ShortCode,
		ExpiresAt:             link.ExpiresAt,
		CreatedAt:             link.CreatedAt,
		UpdatedAt:             link.UpdatedAt,
	}
}

func PaymentLinksToResponse(links []entity.PaymentLink) []*model.PaymentLinkResponse {
	responses := make([]*model.PaymentLinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, PaymentLinkToResponse(&links[i]))
	}
	return responses
}
