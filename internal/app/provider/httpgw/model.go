package httpgw

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avorobev/payment-router/internal/app/provider"
)

type quoteRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
}

type quoteResponse struct {
	Commission decimal.Decimal `json:"commission"`
}

type orderItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type createOrderRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Items         []orderItem     `json:"items"`
}

type gatewayResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	OrderRef  string          `json:"order_reference"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   map[string]any  `json:"payload,omitempty"`
}

func (r gatewayResponse) toResponse() provider.Response {
	return provider.Response{
		Success:   r.Success,
		Message:   r.Message,
		OrderRef:  r.OrderRef,
		Amount:    r.Amount,
		Status:    r.Status,
		Timestamp: r.Timestamp,
		Payload:   r.Payload,
	}
}
