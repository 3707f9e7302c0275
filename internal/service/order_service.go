package service

import (
	"context"
	"fmt"
	"time"

	"foodfleet/internal/domain"

	log "github.com/sirupsen/logrus"
)

const (
	msgMissingOrderInfo = "Missing required order information."
	msgOrderPlaced      = "Order placed successfully!"

	// publishTimeout bounds how long a committed order waits on the broker.
	publishTimeout = 3 * time.Second
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

// NewOrderService accepts a nil publisher; order events are then not emitted.
func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// ValidateOrder reports every required field that is absent. Zero numbers and
// empty strings count as absent.
func ValidateOrder(order *domain.OrderRequest) error {
	var missing []string
	if order.RestaurantID == 0 {
		missing = append(missing, "restaurant_id")
	}
	if len(order.CartItems) == 0 {
		missing = append(missing, "cart_items")
	}
	if order.TotalAmount == 0 {
		missing = append(missing, "total_amount")
	}
	required := []struct {
		field string
		value string
	}{
		{"customer_name", order.CustomerName},
		{"delivery_address", order.DeliveryAddress},
		{"city", order.City},
		{"state", order.State},
		{"pin_code", order.PinCode},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Message: msgMissingOrderInfo, Fields: missing}
	}
	return nil
}

func (s *OrderService) PlaceOrder(ctx context.Context, order *domain.OrderRequest) (*domain.OrderConfirmation, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}

	orderID, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%w: place order: %w", ErrStore, err)
	}

	log.WithFields(log.Fields{
		"order_id":      orderID,
		"restaurant_id": order.RestaurantID,
		"items":         len(order.CartItems),
	}).Info("order placed")

	if s.publisher != nil {
		event := domain.OrderPlacedEvent{
			Type:          domain.EventOrderPlaced,
			OrderID:       orderID,
			RestaurantID:  order.RestaurantID,
			TotalAmount:   order.TotalAmount,
			ItemCount:     len(order.CartItems),
			Timestamp:     time.Now().UTC(),
		}
		if order.PaymentMethod != nil {
			event.PaymentMethod = *order.PaymentMethod
		}
		// The order is committed; a client disconnect must not drop its event.
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishOrderPlaced(pubCtx, event); err != nil {
			log.WithError(err).WithField("order_id", orderID).Warn("failed to publish order event")
		}
	}

	return &domain.OrderConfirmation{Message: msgOrderPlaced, OrderID: orderID}, nil
}

func (s *OrderService) OrderQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	exists, err := s.repo.OrderExists(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: look up order %d: %w", ErrStore, orderID, err)
	}
	if !exists {
		return nil, ErrOrderNotFound
	}
	return s.qrEncoder.Generate(orderID)
}
