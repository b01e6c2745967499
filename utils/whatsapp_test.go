package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleNotification() OrderNotification {
	return OrderNotification{
		ID:           5,
		CustomerName: "Ana Doe",
		Phone:        "044123456",
		Address:      "Rr. Nena Tereze",
		City:         "Prishtina",
		Subtotal:     24.98,
		DeliveryFee:  2,
		Total:        26.98,
		Status:       "pending",
		Items: []OrderNotificationItem{
			{Name: "Case", Qty: 2, Price: 9.99},
			{Name: "Cable", Qty: 1, Price: 5},
		},
	}
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(sampleNotification())

	assert.Contains(t, msg, "Order #5")
	assert.Contains(t, msg, "Ana Doe")
	assert.Contains(t, msg, "044123456")
	assert.Contains(t, msg, "Rr. Nena Tereze (Prishtina)")
	assert.Contains(t, msg, "• Case x2 — €9.99")
	assert.Contains(t, msg, "• Cable x1 — €5.00")
	assert.Contains(t, msg, "Subtotal: €24.98")
	assert.Contains(t, msg, "Delivery: €2.00")
	assert.Contains(t, msg, "Total: €26.98")
	assert.True(t, strings.HasSuffix(msg, "Status: pending"))
	assert.NotContains(t, msg, "📝")
}

func TestFormatOrderMessageEmptyAddress(t *testing.T) {
	n := sampleNotification()
	n.Address = ""
	n.City = ""
	n.Note = "call before delivery"

	msg := FormatOrderMessage(n)
	assert.Contains(t, msg, "📍 -")
	assert.Contains(t, msg, "📝 call before delivery")
}

func TestNotifyOrderWAWithoutConfigIsNoop(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")
	t.Setenv("WHATSAPP_TO", "")

	// must return immediately without attempting delivery
	NotifyOrderWA(sampleNotification())
}
