package repository

import (
	"context"
	"sync"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"gorm.io/gorm"
)

// TypeRepository serves the item-type reference data. The full table is read
// once per instance and held for the instance's lifetime; nothing invalidates
// it short of a process restart.
type TypeRepository interface {
	GetAll(ctx context.Context) ([]model.ItemType, error)
}

type typeRepository struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache []model.ItemType
}

func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) GetAll(ctx context.Context) ([]model.ItemType, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	var types []model.ItemType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	r.cache = types
	return r.cache, nil
}
