package domain

import (
	"fmt"
	"time"
)

// Restaurant and MenuItem rows are passed through column by column.
type Restaurant map[string]any

type MenuItem map[string]any

// RestaurantWithMenu holds every restaurant column plus a "menu" key with its items.
type RestaurantWithMenu map[string]any

const (
	RestaurantIDColumn = "restaurant_id"
	MenuColumn         = "menu"
)

// ColumnKey returns the textual form of a column value, so ids read as int64,
// []byte or string compare equal.
func ColumnKey(row map[string]any, column string) (string, bool) {
	value, ok := row[column]
	if !ok || value == nil {
		return "", false
	}
	switch v := value.(type) {
	case []byte:
		return string(v), true
	case float64:
		return fmt.Sprintf("%.0f", v), v == float64(int64(v))
	default:
		return fmt.Sprint(v), true
	}
}

type CartItem struct {
	ItemID   int     `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderRequest struct {
	RestaurantID         int        `json:"restaurant_id"`
	CartItems            []CartItem `json:"cart_items"`
	TotalAmount          float64    `json:"total_amount"`
	CustomerName         string     `json:"customer_name"`
	CustomerPhone        *string    `json:"customer_phone,omitempty"`
	CustomerEmail        *string    `json:"customer_email,omitempty"`
	DeliveryAddress      string     `json:"delivery_address"`
	City                 string     `json:"city"`
	State                string     `json:"state"`
	PinCode              string     `json:"pin_code"`
	DeliveryInstructions *string    `json:"delivery_instructions,omitempty"`
	PaymentMethod        *string    `json:"payment_method,omitempty"`
	PromoCodeApplied     *string    `json:"promo_code_applied,omitempty"`
	DiscountAmount       *float64   `json:"discount_amount,omitempty"`
	DeliveryFee          *float64   `json:"delivery_fee,omitempty"`
	TaxesAmount          *float64   `json:"taxes_amount,omitempty"`
}

type OrderConfirmation struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

type HelpInquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type OrderPlacedEvent struct {
	Type          string    `json:"type"`
	OrderID       int64     `json:"order_id"`
	RestaurantID  int       `json:"restaurant_id"`
	TotalAmount   float64   `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"
