package controllers

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutBody() map[string]any {
	return map[string]any{
		"customerName": "Ana Doe",
		"phone":        "044123456",
		"cartItems": []any{
			map[string]any{"name": "Case", "price": "9,99", "qty": float64(2)},
			map[string]any{"name": "Cable", "price": float64(5), "qty": float64(1)},
		},
		"deliveryFee": float64(2),
	}
}

func TestNormalizeOrderPayloadAliases(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"customer_name", map[string]any{"customer_name": "Ana Doe"}},
		{"customerName", map[string]any{"customerName": "Ana Doe"}},
		{"fullName", map[string]any{"fullName": "Ana Doe"}},
		{"name", map[string]any{"name": "  Ana Doe  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := normalizeOrderPayload(tt.body)
			assert.Equal(t, "Ana Doe", p.CustomerName)
		})
	}
}

func TestNormalizeOrderPayloadDeliveryFee(t *testing.T) {
	p := normalizeOrderPayload(map[string]any{"shippingCost": float64(3.5)})
	assert.True(t, p.DeliveryFee.Equal(decimal.RequireFromString("3.5")))

	p = normalizeOrderPayload(map[string]any{"delivery_fee": "nonsense"})
	assert.True(t, p.DeliveryFee.IsZero())

	p = normalizeOrderPayload(map[string]any{"deliveryFee": float64(-2)})
	assert.True(t, p.DeliveryFee.IsZero())

	p = normalizeOrderPayload(map[string]any{})
	assert.True(t, p.DeliveryFee.IsZero())
}

func TestNormalizeOrderPayloadLines(t *testing.T) {
	p := normalizeOrderPayload(map[string]any{
		"items": []any{map[string]any{"name": "Case"}},
	})
	require.Len(t, p.RawLines, 1)

	p = normalizeOrderPayload(map[string]any{"cartItems": "not-a-list"})
	assert.Empty(t, p.RawLines)
}

func TestValidateOrderLinesHappyPath(t *testing.T) {
	p := normalizeOrderPayload(checkoutBody())
	lines, err := validateOrderLines(p)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "case", string(lines[0].Ref))
	assert.Equal(t, "Case", lines[0].Name)
	assert.Equal(t, 2, lines[0].Qty)
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("9.99")))

	assert.Equal(t, "cable", string(lines[1].Ref))
	assert.Equal(t, 1, lines[1].Qty)
}

func TestValidateOrderLinesNumericProductID(t *testing.T) {
	body := map[string]any{
		"customerName": "Ana Doe",
		"phone":        "044123456",
		"items": []any{
			map[string]any{"productId": float64(17), "name": "iPhone 15", "price": float64(999), "qty": float64(1)},
		},
	}
	lines, err := validateOrderLines(normalizeOrderPayload(body))
	require.NoError(t, err)

	id, ok := lines[0].Ref.Numeric()
	assert.True(t, ok)
	assert.Equal(t, 17, id)
}

func TestValidateOrderLinesSynthesizesPlaceholder(t *testing.T) {
	body := map[string]any{
		"customerName": "Ana Doe",
		"phone":        "044123456",
		"items":        []any{map[string]any{"price": float64(5), "qty": float64(1)}},
	}
	lines, err := validateOrderLines(normalizeOrderPayload(body))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(lines[0].Ref), "auto-"))
	assert.Equal(t, "#"+string(lines[0].Ref), lines[0].Name)
}

func TestValidateOrderLinesFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(body map[string]any)
		wantErr error
	}{
		{"missing customer name", func(b map[string]any) { delete(b, "customerName") }, errOrderIncomplete},
		{"missing phone", func(b map[string]any) { delete(b, "phone") }, errOrderIncomplete},
		{"empty cart", func(b map[string]any) { b["cartItems"] = []any{} }, errOrderIncomplete},
		{"zero quantity", func(b map[string]any) {
			b["cartItems"] = []any{map[string]any{"name": "Case", "price": float64(5), "qty": float64(0)}}
		}, errInvalidQuantity},
		{"negative quantity", func(b map[string]any) {
			b["cartItems"] = []any{map[string]any{"name": "Case", "price": float64(5), "qty": float64(-1)}}
		}, errInvalidQuantity},
		{"non-numeric price", func(b map[string]any) {
			b["cartItems"] = []any{map[string]any{"name": "Case", "price": "abc", "qty": float64(1)}}
		}, errInvalidPrice},
		{"negative price", func(b map[string]any) {
			b["cartItems"] = []any{map[string]any{"name": "Case", "price": float64(-5), "qty": float64(1)}}
		}, errInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := checkoutBody()
			tt.mutate(body)
			_, err := validateOrderLines(normalizeOrderPayload(body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateOrderLinesDefaultsQuantityToOne(t *testing.T) {
	body := map[string]any{
		"customerName": "Ana Doe",
		"phone":        "044123456",
		"items":        []any{map[string]any{"name": "Case", "price": float64(5)}},
	}
	lines, err := validateOrderLines(normalizeOrderPayload(body))
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestOrderTotalsConcreteScenario(t *testing.T) {
	p := normalizeOrderPayload(checkoutBody())
	lines, err := validateOrderLines(p)
	require.NoError(t, err)

	subtotal, total := orderTotals(lines, p.DeliveryFee)
	assert.Equal(t, "24.98", subtotal.StringFixed(2))
	assert.Equal(t, "26.98", total.StringFixed(2))
}

func TestOrderTotalsAvoidsFloatDrift(t *testing.T) {
	body := map[string]any{
		"customerName": "Ana Doe",
		"phone":        "044123456",
		"items": []any{
			map[string]any{"name": "Sticker", "price": "0.10", "qty": float64(3)},
		},
	}
	p := normalizeOrderPayload(body)
	lines, err := validateOrderLines(p)
	require.NoError(t, err)

	subtotal, total := orderTotals(lines, p.DeliveryFee)
	assert.Equal(t, "0.30", subtotal.StringFixed(2))
	assert.Equal(t, "0.30", total.StringFixed(2))
}

func TestToOrderItemsPreservesOrderAndSnapshot(t *testing.T) {
	p := normalizeOrderPayload(checkoutBody())
	lines, err := validateOrderLines(p)
	require.NoError(t, err)

	items := toOrderItems(lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Case", items[0].Name)
	assert.Equal(t, 9.99, items[0].Price)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, "Cable", items[1].Name)
}
