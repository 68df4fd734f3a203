package messaging

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

const (
	messageVersion    = "1.0"
	messageSource     = "order-simulator"
	defaultRestaurant = "ACSP_001"

	deliveryFlatFee          = 2.99
	deliveryServiceFeeRate   = 0.12
	deliveryEstimatedMinutes = 30
)

// Generator renders orders into messages. Message ids are drawn from a
// monotonically increasing per-generator counter, so one Generator instance
// must be shared by everything that needs globally ordered message ids.
type Generator struct {
	mu           sync.Mutex
	counter      int
	restaurantID string
}

func NewGenerator() *Generator {
	return NewGeneratorForRestaurant(defaultRestaurant)
}

// NewGeneratorForRestaurant overrides the restaurant identifier stamped on
// delivery payloads.
func NewGeneratorForRestaurant(restaurantID string) *Generator {
	if restaurantID == "" {
		restaurantID = defaultRestaurant
	}
	return &Generator{counter: 1, restaurantID: restaurantID}
}

// Generate renders the order in the given format. When includeMetadata is
// set, the canonical payload carries a metadata block and a message id is
// consumed from the counter. An unknown format consumes no id.
func (g *Generator) Generate(o *order.Order, format message.Format, includeMetadata bool) (message.Message, error) {
	if o == nil {
		return message.Message{}, errs.NewValueIsRequiredError("order")
	}
	if err := format.Validate(); err != nil {
		return message.Message{}, err
	}

	var metadata *MetadataPayload
	if includeMetadata {
		metadata = &MetadataPayload{
			MessageID:      g.nextMessageID(),
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
			MessageVersion: messageVersion,
			Source:         messageSource,
		}
	}
	payload := buildOrderPayload(o, metadata)

	var (
		content string
		data    any
		err     error
	)
	switch format {
	case message.JSON:
		content, err = marshalJSON(payload)
		data = payload
	case message.XML:
		content, err = renderXML(payload)
		data = payload
	case message.CSV:
		content = renderCSV(payload)
		data = payload
	case message.POS:
		pos := buildPOSPayload(payload)
		content, err = marshalJSON(pos)
		data = pos
	case message.Kitchen:
		kitchen := buildKitchenPayload(payload)
		content, err = marshalJSON(kitchen)
		data = kitchen
	case message.Delivery:
		delivery := buildDeliveryPayload(payload, g.restaurantID)
		content, err = marshalJSON(delivery)
		data = delivery
	}
	if err != nil {
		return message.Message{}, fmt.Errorf("render %s message: %w", format, err)
	}

	return message.Message{
		Format:      format,
		ContentType: format.ContentType(),
		Content:     content,
		OrderID:     o.ID().String(),
		OrderType:   o.Type(),
		Data:        data,
	}, nil
}

func (g *Generator) nextMessageID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("MSG_%06d", g.counter)
	g.counter++
	return id
}

func marshalJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type xmlOrderMessage struct {
	XMLName xml.Name `xml:"OrderMessage"`
	Order   xmlOrder `xml:"Order"`
}

type xmlOrder struct {
	ID         string      `xml:"id,attr"`
	Type       string      `xml:"type,attr"`
	Status     string      `xml:"status,attr"`
	ExternalID string      `xml:"external_id,attr,omitempty"`
	Customer   xmlCustomer `xml:"Customer"`
	Items      []xmlItem   `xml:"Items>Item"`
	Totals     xmlTotals   `xml:"Totals"`
}

type xmlCustomer struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	Phone         string `xml:"phone,attr,omitempty"`
	Email         string `xml:"email,attr,omitempty"`
	LoyaltyMember bool   `xml:"loyalty_member,attr"`
}

type xmlItem struct {
	MenuID              string  `xml:"menu_id,attr"`
	Name                string  `xml:"name,attr"`
	Quantity            int     `xml:"quantity,attr"`
	UnitPrice           float64 `xml:"unit_price,attr"`
	TotalPrice          float64 `xml:"total_price,attr"`
	Category            string  `xml:"category,attr"`
	SpecialInstructions string  `xml:"special_instructions,attr,omitempty"`
}

type xmlTotals struct {
	Subtotal float64 `xml:"subtotal,attr"`
	Tax      float64 `xml:"tax,attr"`
	Tip      float64 `xml:"tip,attr"`
	Total    float64 `xml:"total,attr"`
}

func renderXML(payload OrderPayload) (string, error) {
	doc := xmlOrderMessage{
		Order: xmlOrder{
			ID:         payload.OrderID,
			Type:       payload.OrderType,
			Status:     payload.Status,
			ExternalID: payload.ExternalOrderID,
			Customer: xmlCustomer{
				ID:            payload.Customer.ID,
				Name:          payload.Customer.Name,
				Phone:         payload.Customer.Phone,
				Email:         payload.Customer.Email,
				LoyaltyMember: payload.Customer.LoyaltyMember,
			},
			Totals: xmlTotals{
				Subtotal: payload.Totals.Subtotal,
				Tax:      payload.Totals.TaxAmount,
				Tip:      payload.Totals.TipAmount,
				Total:    payload.Totals.TotalAmount,
			},
		},
	}
	for _, item := range payload.Items {
		doc.Order.Items = append(doc.Order.Items, xmlItem{
			MenuID:              item.MenuItemID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			TotalPrice:          item.TotalPrice,
			Category:            item.Category,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	b, err := xml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

const csvHeader = "OrderID,ExternalID,OrderType,Status,CustomerName,Phone,Email,LoyaltyMember," +
	"ItemName,Quantity,UnitPrice,TotalPrice,SpecialInstructions,Subtotal,Tax,Tip,GrandTotal,OrderTime"

// renderCSV emits one row per order item, with the order-level columns
// repeated on every row. Every field is quoted.
func renderCSV(payload OrderPayload) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	for _, item := range payload.Items {
		fields := []string{
			payload.OrderID,
			payload.ExternalOrderID,
			payload.OrderType,
			payload.Status,
			payload.Customer.Name,
			payload.Customer.Phone,
			payload.Customer.Email,
			strconv.FormatBool(payload.Customer.LoyaltyMember),
			item.Name,
			strconv.Itoa(item.Quantity),
			formatAmount(item.UnitPrice),
			formatAmount(item.TotalPrice),
			item.SpecialInstructions,
			formatAmount(payload.Totals.Subtotal),
			formatAmount(payload.Totals.TaxAmount),
			formatAmount(payload.Totals.TipAmount),
			formatAmount(payload.Totals.TotalAmount),
			payload.OrderTime,
		}
		sb.WriteByte('\n')
		for i, field := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func buildPOSPayload(payload OrderPayload) POSPayload {
	items := make([]POSItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, POSItem{
			SKU:       item.MenuItemID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
			LineTotal: item.TotalPrice,
			Modifiers: item.Customizations,
			Notes:     item.SpecialInstructions,
		})
	}
	loyaltyNumber := ""
	if payload.Customer.LoyaltyMember {
		loyaltyNumber = payload.Customer.ID
	}
	return POSPayload{
		TransactionID:   payload.OrderID,
		TransactionType: "ORDER",
		Timestamp:       payload.OrderTime,
		Customer: POSCustomer{
			ID:            payload.Customer.ID,
			Name:          payload.Customer.Name,
			Phone:         payload.Customer.Phone,
			LoyaltyNumber: loyaltyNumber,
		},
		OrderDetails: POSOrderDetails{
			OrderType: payload.OrderType,
			Items:     items,
			Subtotal:  payload.Totals.Subtotal,
			Tax:       payload.Totals.TaxAmount,
			Tip:       payload.Totals.TipAmount,
			Total:     payload.Totals.TotalAmount,
		},
		PaymentInfo:  POSPayment{Method: "CARD", Status: "PENDING"},
		KitchenNotes: payload.SpecialInstructions,
	}
}

func buildKitchenPayload(payload OrderPayload) KitchenPayload {
	items := make([]KitchenItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		var customizations []string
		for key := range item.Customizations {
			customizations = append(customizations, key)
		}
		slices.Sort(customizations)
		items = append(items, KitchenItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			PrepTime:       item.PreparationTime,
			Instructions:   item.SpecialInstructions,
			Customizations: customizations,
			Allergens:      item.Allergens,
		})
	}

	number := payload.OrderID
	if len(number) > 6 {
		number = number[len(number)-6:]
	}
	priority := "NORMAL"
	if payload.OrderType == order.DriveThru.String() || payload.OrderType == order.UberEats.String() {
		priority = "HIGH"
	}
	return KitchenPayload{
		OrderNumber:     number,
		OrderType:       strings.ToUpper(payload.OrderType),
		CustomerName:    payload.Customer.Name,
		OrderTime:       payload.OrderTime,
		EstimatedReady:  payload.EstimatedReadyTime,
		Items:           items,
		Priority:        priority,
		SpecialRequests: payload.SpecialInstructions,
	}
}

func buildDeliveryPayload(payload OrderPayload, restaurantID string) DeliveryPayload {
	items := make([]DeliveryItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, DeliveryItem{
			ItemID:              item.MenuItemID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			Price:               item.UnitPrice,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	// Delivery platforms key on their own id when one was assigned.
	orderID := payload.ExternalOrderID
	if orderID == "" {
		orderID = payload.OrderID
	}
	return DeliveryPayload{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		OrderType:    payload.OrderType,
		Customer: DeliveryCustomer{
			Name:  payload.Customer.Name,
			Phone: payload.Customer.Phone,
			Email: payload.Customer.Email,
		},
		Items:                 items,
		OrderTotal:            payload.Totals.TotalAmount,
		DeliveryFee:           deliveryFlatFee,
		ServiceFee:            kernel.Round2(payload.Totals.Subtotal * deliveryServiceFeeRate),
		EstimatedDeliveryTime: deliveryEstimatedMinutes,
		SpecialInstructions:   payload.SpecialInstructions,
	}
}
