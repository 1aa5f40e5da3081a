package model

import (
	"context"

	"github.com/avorobev/payment-router/internal/app/entity"
)

// Storage is the durable home of orders. Save assigns a fresh id to an
// order that doesn't have one yet; a read following a write from the
// same operation observes that write.
type Storage interface {
	Save(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetAll(ctx context.Context) (entity.Orders, error)
}
