package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// OrderNotification carries the order summary sent to the shop's WhatsApp
// number after a checkout commits.
type OrderNotification struct {
	ID           uint
	CustomerName string
	Phone        string
	Address      string
	City         string
	Note         string
	Subtotal     float64
	DeliveryFee  float64
	Total        float64
	Status       string
	Items        []OrderNotificationItem
}

type OrderNotificationItem struct {
	Name  string
	Qty   int
	Price float64
}

func FormatOrderMessage(o OrderNotification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 Order #%d\n", o.ID)
	fmt.Fprintf(&b, "👤 %s  📞 %s\n", o.CustomerName, o.Phone)

	address := o.Address
	if address == "" {
		address = "-"
	}
	if o.City != "" {
		fmt.Fprintf(&b, "📍 %s (%s)\n", address, o.City)
	} else {
		fmt.Fprintf(&b, "📍 %s\n", address)
	}
	if o.Note != "" {
		fmt.Fprintf(&b, "📝 %s\n", o.Note)
	}

	b.WriteString("\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %s x%d — €%s\n", item.Name, item.Qty, FormatMoney(item.Price))
	}

	fmt.Fprintf(&b, "\nSubtotal: €%s\n", FormatMoney(o.Subtotal))
	fmt.Fprintf(&b, "Delivery: €%s\n", FormatMoney(o.DeliveryFee))
	fmt.Fprintf(&b, "Total: €%s\n", FormatMoney(o.Total))
	fmt.Fprintf(&b, "Status: %s", o.Status)

	return b.String()
}

// NotifyOrderWA posts the order summary to the WhatsApp Cloud API. It is
// called on its own goroutine after the checkout transaction commits: a
// missing configuration makes it a no-op and every failure is logged and
// swallowed, never surfaced to the client.
func NotifyOrderWA(o OrderNotification) {
	token := os.Getenv("WHATSAPP_TOKEN")
	phoneID := os.Getenv("WHATSAPP_PHONE_ID")
	to := os.Getenv("WHATSAPP_TO")
	if token == "" || phoneID == "" || to == "" {
		return
	}

	url := fmt.Sprintf("https://graph.facebook.com/v20.0/%s/messages", phoneID)
	body := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": FormatOrderMessage(o)},
	}

	resp, err := resty.New().SetTimeout(15 * time.Second).
		R().
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)

	if err != nil {
		log.Printf("WhatsApp notify failed for order %d: %v", o.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("WhatsApp notify failed for order %d: status %d: %s", o.ID, resp.StatusCode(), resp.Body())
	}
}
