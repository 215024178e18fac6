package payment

import (
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// Order is the gateway order handle the client needs to open checkout
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway creates payment orders against the Razorpay API
type Gateway interface {
	CreateOrder(amount int64, currency string) (*Order, error)
}

// RazorpayGateway is the production Gateway implementation
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway creates a gateway client from the key pair
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

// CreateOrder requests a new order for the given amount in minor units.
// Gateway failures surface as ErrPaymentGateway; nothing is persisted here.
func (g *RazorpayGateway) CreateOrder(amount int64, currency string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  "rcpt_" + uuid.New().String(),
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		logger.Error().Err(err).Int64("amount", amount).Msg("Razorpay order creation failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("%w: response missing order id", apperrors.ErrPaymentGateway)
	}

	return &Order{
		ID:       orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}
