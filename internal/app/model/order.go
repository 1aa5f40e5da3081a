package model

type CreateOrderRequest struct {
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID            int64               `json:"id"`
	Amount        string              `json:"amount"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	ProviderName  string              `json:"provider_name,omitempty"`
	ProviderRef   string              `json:"provider_order_reference,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Fees          []OrderFeeResponse  `json:"fees"`
	CreatedAt     string              `json:"created_at"`
	PaidAt        string              `json:"paid_at,omitempty"`
	CancelledAt   string              `json:"cancelled_at,omitempty"`
}

type OrderItemResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type OrderFeeResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}
