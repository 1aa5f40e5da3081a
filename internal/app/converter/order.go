package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/model"
)

func ConvertOrderToResponse(order *entity.Order) model.OrderResponse {
	response := model.OrderResponse{
		ID:            order.ID(),
		Amount:        order.Amount().String(),
		Status:        order.Status().String(),
		PaymentMethod: order.PaymentMethod().String(),
		ProviderName:  order.ProviderName(),
		ProviderRef:   order.ProviderRef(),
		CreatedAt:     carbon.CreateFromStdTime(order.CreatedAt()).ToRfc3339String(),
	}

	for _, item := range order.Items() {
		response.Items = append(response.Items, model.OrderItemResponse{
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().String(),
		})
	}

	for _, fee := range order.Fees() {
		response.Fees = append(response.Fees, model.OrderFeeResponse{
			Name:   fee.Name,
			Amount: fee.Amount.String(),
		})
	}

	if paidAt := order.PaidAt(); paidAt != nil {
		response.PaidAt = carbon.CreateFromStdTime(*paidAt).ToRfc3339String()
	}
	if cancelledAt := order.CancelledAt(); cancelledAt != nil {
		response.CancelledAt = carbon.CreateFromStdTime(*cancelledAt).ToRfc3339String()
	}

	return response
}

func ConvertOrdersToResponses(orders entity.Orders) model.OrderResponses {
	responses := make(model.OrderResponses, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}
