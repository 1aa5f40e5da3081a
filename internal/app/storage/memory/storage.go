package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/avorobev/payment-router/internal/app/entity"
	err_storage "github.com/avorobev/payment-router/internal/app/storage/api/errors"
)

// Memory keeps all orders in a mutex-guarded map. The id counter is
// incremented under the same lock, so two concurrent saves never
// receive the same id.
type Memory struct {
	mutex  sync.RWMutex
	orders map[int64]*entity.Order
	lastID int64
}

func NewMemoryStorage() *Memory {
	return &Memory{
		orders: make(map[int64]*entity.Order),
	}
}

func (s *Memory) Save(ctx context.Context, order *entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if order.ID() == 0 {
		s.lastID++
		if err := order.SetID(s.lastID); err != nil {
			s.lastID--
			return err
		}
	}

	s.orders[order.ID()] = order

	return nil
}

func (s *Memory) Update(ctx context.Context, order *entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.orders[order.ID()]; !ok {
		return err_storage.ErrOrderNotFound
	}

	s.orders[order.ID()] = order

	return nil
}

func (s *Memory) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, err_storage.ErrOrderNotFound
	}

	return order, nil
}

func (s *Memory) GetAll(ctx context.Context) (entity.Orders, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	orders := make(entity.Orders, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID() < orders[j].ID()
	})

	return orders, nil
}
