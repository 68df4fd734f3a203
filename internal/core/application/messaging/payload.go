package messaging

import (
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
)

// OrderPayload is the canonical structured form of an order message. The
// json and xml formats render it directly; the specialized formats derive
// their own shapes from the same order snapshot.
type OrderPayload struct {
	OrderID             string           `json:"order_id"`
	ExternalOrderID     string           `json:"external_order_id,omitempty"`
	OrderType           string           `json:"order_type"`
	Status              string           `json:"status"`
	OrderTime           string           `json:"order_time"`
	Customer            CustomerPayload  `json:"customer"`
	Items               []ItemPayload    `json:"items"`
	Totals              TotalsPayload    `json:"totals"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	EstimatedReadyTime  string           `json:"estimated_ready_time,omitempty"`
	Metadata            *MetadataPayload `json:"metadata,omitempty"`
}

type CustomerPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LoyaltyMember bool   `json:"loyalty_member"`
}

type ItemPayload struct {
	MenuItemID          string            `json:"menu_item_id"`
	Name                string            `json:"name"`
	Category            string            `json:"category"`
	Quantity            int               `json:"quantity"`
	UnitPrice           float64           `json:"unit_price"`
	TotalPrice          float64           `json:"total_price"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	Customizations      map[string]string `json:"customizations,omitempty"`
	PreparationTime     int               `json:"preparation_time"`
	Allergens           []string          `json:"allergens,omitempty"`
}

type TotalsPayload struct {
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	TipAmount   float64 `json:"tip_amount"`
	TotalAmount float64 `json:"total_amount"`
}

// MetadataPayload identifies a generated message for downstream tracing.
type MetadataPayload struct {
	MessageID      string `json:"message_id"`
	GeneratedAt    string `json:"generated_at"`
	MessageVersion string `json:"message_version"`
	Source         string `json:"source"`
}

// POSPayload is the transaction shape expected by the point-of-sale system.
type POSPayload struct {
	TransactionID   string          `json:"transaction_id"`
	TransactionType string          `json:"transaction_type"`
	Timestamp       string          `json:"timestamp"`
	Customer        POSCustomer     `json:"customer"`
	OrderDetails    POSOrderDetails `json:"order_details"`
	PaymentInfo     POSPayment      `json:"payment_info"`
	KitchenNotes    string          `json:"kitchen_notes,omitempty"`
}

type POSCustomer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	LoyaltyNumber string `json:"loyalty_number,omitempty"`
}

type POSOrderDetails struct {
	OrderType string    `json:"order_type"`
	Items     []POSItem `json:"items"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Tip       float64   `json:"tip"`
	Total     float64   `json:"total"`
}

type POSItem struct {
	SKU       string            `json:"sku"`
	Name      string            `json:"name"`
	Quantity  int               `json:"qty"`
	Price     float64           `json:"price"`
	LineTotal float64           `json:"line_total"`
	Modifiers map[string]string `json:"modifiers,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

type POSPayment struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// KitchenPayload is the ticket shape shown on the kitchen display.
type KitchenPayload struct {
	OrderNumber     string        `json:"order_number"`
	OrderType       string        `json:"order_type"`
	CustomerName    string        `json:"customer_name"`
	OrderTime       string        `json:"order_time"`
	EstimatedReady  string        `json:"estimated_ready,omitempty"`
	Items           []KitchenItem `json:"items"`
	Priority        string        `json:"priority"`
	SpecialRequests string        `json:"special_requests,omitempty"`
}

type KitchenItem struct {
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	PrepTime       int      `json:"prep_time"`
	Instructions   string   `json:"instructions,omitempty"`
	Customizations []string `json:"customizations,omitempty"`
	Allergens      []string `json:"allergens,omitempty"`
}

// DeliveryPayload is the shape handed to third-party delivery platforms.
type DeliveryPayload struct {
	OrderID               string           `json:"order_id"`
	RestaurantID          string           `json:"restaurant_id"`
	OrderType             string           `json:"order_type"`
	Customer              DeliveryCustomer `json:"customer"`
	Items                 []DeliveryItem   `json:"items"`
	OrderTotal            float64          `json:"order_total"`
	DeliveryFee           float64          `json:"delivery_fee"`
	ServiceFee            float64          `json:"service_fee"`
	EstimatedDeliveryTime int              `json:"estimated_delivery_time"`
	SpecialInstructions   string           `json:"special_instructions,omitempty"`
}

type DeliveryCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type DeliveryItem struct {
	ItemID              string  `json:"item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// NewOrderPayload snapshots an order into its canonical payload without
// metadata. The HTTP adapter uses it for order responses.
func NewOrderPayload(o *order.Order) OrderPayload {
	return buildOrderPayload(o, nil)
}

func buildOrderPayload(o *order.Order, metadata *MetadataPayload) OrderPayload {
	items := o.Items()
	itemPayloads := make([]ItemPayload, 0, len(items))
	for _, item := range items {
		mi := item.MenuItem()
		itemPayloads = append(itemPayloads, ItemPayload{
			MenuItemID:          mi.ID(),
			Name:                mi.Name(),
			Category:            mi.Category().String(),
			Quantity:            item.Quantity(),
			UnitPrice:           mi.BasePrice(),
			TotalPrice:          item.LinePrice(),
			SpecialInstructions: item.SpecialInstructions(),
			Customizations:      item.Customizations(),
			PreparationTime:     mi.PreparationTime(),
			Allergens:           mi.Allergens(),
		})
	}

	customer := o.Customer()
	payload := OrderPayload{
		OrderID:         o.ID().String(),
		ExternalOrderID: o.ExternalOrderID(),
		OrderType:       o.Type().String(),
		Status:          o.Status().String(),
		OrderTime:       o.OrderTime().Format(time.RFC3339),
		Customer: CustomerPayload{
			ID:            customer.ID().String(),
			Name:          customer.Name(),
			Phone:         customer.Phone(),
			Email:         customer.Email(),
			LoyaltyMember: customer.IsLoyaltyMember(),
		},
		Items: itemPayloads,
		Totals: TotalsPayload{
			Subtotal:    o.Subtotal(),
			TaxAmount:   o.Tax(),
			TipAmount:   o.Tip(),
			TotalAmount: o.Total(),
		},
		SpecialInstructions: o.SpecialInstructions(),
		Metadata:            metadata,
	}
	if ready, ok := o.EstimatedReadyTime(); ok {
		payload.EstimatedReadyTime = ready.Format(time.RFC3339)
	}
	return payload
}
