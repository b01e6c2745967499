package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/FloresaZogaj1/topbackend/utils"
	"github.com/shopspring/decimal"
)

// Historical clients send the same logical field under different names. The
// alias tables below are the single place those spellings are reconciled;
// handlers never do their own fallback chains.
var (
	customerNameAliases = []string{"customer_name", "customerName", "fullName", "name"}
	deliveryFeeAliases  = []string{"deliveryFee", "delivery_fee", "shippingCost"}
	cartAliases         = []string{"cartItems", "items"}

	lineNameAliases = []string{"name", "title", "productName", "model"}
	lineRefAliases  = []string{"product_id", "productId", "id", "sku", "slug", "code", "_id"}
	lineQtyAliases  = []string{"qty", "quantity"}
)

var (
	errOrderIncomplete = errors.New("Order details are incomplete.")
	errInvalidQuantity = errors.New("Quantity must be at least 1.")
	errInvalidPrice    = errors.New("Invalid price.")
)

type orderPayload struct {
	CustomerName string
	Phone        string
	Address      string
	City         string
	Note         string
	DeliveryFee  decimal.Decimal
	RawLines     []map[string]any
}

// orderLine is a validated cart line with the price still in decimal form so
// totals never touch binary floats.
type orderLine struct {
	Ref   models.ProductRef
	Name  string
	Qty   int
	Price decimal.Decimal
}

func firstPresent(body map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := body[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(body map[string]any, aliases ...string) string {
	for _, key := range aliases {
		if v, ok := body[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// refCandidate keeps numeric ids intact; JSON numbers arrive as float64.
func refCandidate(body map[string]any) string {
	v, ok := firstPresent(body, lineRefAliases)
	if !ok {
		return ""
	}
	switch c := v.(type) {
	case string:
		return strings.TrimSpace(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return ""
	}
}

// normalizeOrderPayload is a pure transform: it reconciles aliases, trims
// strings and defaults, and leaves all validation to validateOrderLines.
func normalizeOrderPayload(body map[string]any) orderPayload {
	p := orderPayload{
		CustomerName: stringField(body, customerNameAliases...),
		Phone:        stringField(body, "phone"),
		Address:      stringField(body, "address"),
		City:         stringField(body, "city"),
		Note:         stringField(body, "note"),
		DeliveryFee:  decimal.Zero,
	}

	if v, ok := firstPresent(body, deliveryFeeAliases); ok {
		if fee, err := utils.ParsePrice(v); err == nil {
			p.DeliveryFee = fee
		}
	}

	if v, ok := firstPresent(body, cartAliases); ok {
		if raw, ok := v.([]any); ok {
			for _, entry := range raw {
				if line, ok := entry.(map[string]any); ok {
					p.RawLines = append(p.RawLines, line)
				} else {
					p.RawLines = append(p.RawLines, map[string]any{})
				}
			}
		}
	}

	return p
}

// validateOrderLines is fail-fast and whole-request: one bad line rejects the
// checkout, no partial order is ever created.
func validateOrderLines(p orderPayload) ([]orderLine, error) {
	if p.CustomerName == "" || p.Phone == "" || len(p.RawLines) == 0 {
		return nil, errOrderIncomplete
	}

	lines := make([]orderLine, 0, len(p.RawLines))
	for idx, raw := range p.RawLines {
		name := stringField(raw, lineNameAliases...)

		candidate := refCandidate(raw)
		if candidate == "" {
			candidate = name
		}
		pid := utils.Slugify(candidate)
		if pid == "" {
			pid = fmt.Sprintf("auto-%d-%d", time.Now().UnixMilli(), idx)
		}
		if name == "" {
			name = "#" + pid
		}

		qty := 1
		if v, ok := firstPresent(raw, lineQtyAliases); ok {
			parsed, err := utils.ParseQuantity(v)
			if err != nil {
				return nil, errInvalidQuantity
			}
			qty = parsed
		}

		price := decimal.Zero
		if v, ok := raw["price"]; ok && v != nil {
			parsed, err := utils.ParsePrice(v)
			if err != nil {
				return nil, errInvalidPrice
			}
			price = parsed
		}

		lines = append(lines, orderLine{
			Ref:   models.ProductRef(pid),
			Name:  name,
			Qty:   qty,
			Price: price,
		})
	}

	return lines, nil
}

// orderTotals recomputes money server-side; client-sent totals are ignored.
// Invariant: total == round2(subtotal + deliveryFee).
func orderTotals(lines []orderLine, deliveryFee decimal.Decimal) (subtotal, total decimal.Decimal) {
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	subtotal = utils.Round2(subtotal)
	total = utils.Round2(subtotal.Add(deliveryFee))
	return subtotal, total
}

func toOrderItems(lines []orderLine) []models.OrderItem {
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{
			ProductID: line.Ref,
			Name:      line.Name,
			Price:     line.Price.InexactFloat64(),
			Qty:       line.Qty,
		}
	}
	return items
}
