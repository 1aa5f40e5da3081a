package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avorobev/payment-router/internal/app/converter"
	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/model"
	err_storage "github.com/avorobev/payment-router/internal/app/storage/api/errors"
	err_usecase "github.com/avorobev/payment-router/internal/app/usecase/errors"
)

//go:generate mockgen -source=orders.go -destination=mock/mock_orders.go -package=mock

type OrderProcessor interface {
	CreateOrder(ctx context.Context, method entity.PaymentMethod, items []entity.Item) (*entity.Order, error)
	CancelOrder(ctx context.Context, id int64) (*entity.Order, error)
	PayOrder(ctx context.Context, id int64) (*entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	ListOrders(ctx context.Context) (entity.Orders, error)
}

type Orders struct {
	processor OrderProcessor
	validate  *validator.Validate
}

func New(processor OrderProcessor) Orders {
	return Orders{
		processor: processor,
		validate:  validator.New(),
	}
}

func (o *Orders) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding create order request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		err = o.validate.Struct(request)
		if err != nil {
			zap.L().Info("create order request rejected by validation", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		method, err := entity.ParsePaymentMethod(request.PaymentMethod)
		if err != nil {
			writeError(w, err)
			return
		}

		items := make([]entity.Item, 0, len(request.Items))
		for _, item := range request.Items {
			items = append(items, entity.Item{
				Name:      item.Name,
				UnitPrice: decimal.NewFromFloat(item.UnitPrice),
				Quantity:  item.Quantity,
			})
		}

		order, err := o.processor.CreateOrder(r.Context(), method, items)
		if err != nil {
			zap.L().Error("error while creating order", zap.Error(err))
			writeError(w, err)
			return
		}

		writeOrder(w, http.StatusCreated, order)
	}
}

func (o *Orders) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		order, err := o.processor.CancelOrder(r.Context(), id)
		if err != nil {
			zap.L().Error("error while cancelling order", zap.Int64("order_id", id), zap.Error(err))
			writeError(w, err)
			return
		}

		writeOrder(w, http.StatusOK, order)
	}
}

func (o *Orders) PayOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		order, err := o.processor.PayOrder(r.Context(), id)
		if err != nil {
			zap.L().Error("error while paying order", zap.Int64("order_id", id), zap.Error(err))
			writeError(w, err)
			return
		}

		writeOrder(w, http.StatusOK, order)
	}
}

func (o *Orders) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		order, err := o.processor.GetOrder(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeOrder(w, http.StatusOK, order)
	}
}

func (o *Orders) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := o.processor.ListOrders(r.Context())
		if err != nil {
			zap.L().Error("error while listing orders", zap.Error(err))
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(converter.ConvertOrdersToResponses(orders))
	}
}

func orderID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeOrder(w http.ResponseWriter, statusCode int, order *entity.Order) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(converter.ConvertOrderToResponse(order))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, entity.ErrIllegalState):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, err_storage.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, err_usecase.ErrNoCapableProvider),
		errors.Is(err, err_usecase.ErrNoEvaluableProvider):
		w.WriteHeader(http.StatusUnprocessableEntity)
	case errors.Is(err, err_usecase.ErrProviderOperation):
		w.WriteHeader(http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
