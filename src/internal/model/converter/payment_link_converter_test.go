package converter_test

import (
	"testing"
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model/converter"

	"github.com/stretchr/testify/assert"
)

func TestPaymentLinkIsActive(t *testing.T) {
	active := true
	inactive := false

	assert.True(t, converter.PaymentLinkIsActive(&entity.PaymentLink{IsActive: nil}))
	assert.True(t, converter.PaymentLinkIsActive(&entity.PaymentLink{IsActive: &active}))
	assert.False(t, converter.PaymentLinkIsActive(&entity.PaymentLink{IsActive: &inactive}))
}

func TestPaymentLinkStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	inactive := false

	t.Run("inactive wins over expiry", func(t *testing.T) {
		link := &entity.PaymentLink{IsActive: &inactive, ExpiresAt: &past}
		assert.Equal(t, "inactive", converter.PaymentLinkStatus(link, now))
	})

	t.Run("expired when past expiry", func(t *testing.T) {
		link := &entity.PaymentLink{ExpiresAt: &past}
		assert.Equal(t, "expired", converter.PaymentLinkStatus(link, now))
	})

	t.Run("active otherwise", func(t *testing.T) {
		assert.Equal(t, "active", converter.PaymentLinkStatus(&entity.PaymentLink{}, now))
		assert.Equal(t, "active", converter.PaymentLinkStatus(&entity.PaymentLink{ExpiresAt: &future}, now))
	})
}

func TestPaymentLinkToResponse(t *testing.T) {
	t.Run("totalAmount falls back to amount", func(t *testing.T) {
		response := converter.PaymentLinkToResponse(&entity.PaymentLink{Amount: 100})
		assert.Equal(t, float64(100), response.TotalAmount)
	})

	t.Run("missing seller name gets placeholder", func(t *testing.T) {
		response := converter.PaymentLinkToResponse(&entity.PaymentLink{})
		assert.Equal(t, "غير محدد", response.SellerName)
	})
}
