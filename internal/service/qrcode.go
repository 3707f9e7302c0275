package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order confirmation page as a 256px PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	return qrcode.Encode(g.OrderURL(orderID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) OrderURL(orderID int64) string {
	return fmt.Sprintf("%s/order.html?order_id=%d", g.BaseURL, orderID)
}
