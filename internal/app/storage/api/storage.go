package storage

import (
	"github.com/avorobev/payment-router/internal/app/storage/api/model"
	storage "github.com/avorobev/payment-router/internal/app/storage/memory"
)

func InitStorage() model.Storage {
	return storage.NewMemoryStorage()
}
