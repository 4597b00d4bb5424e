package repository

import (
	"context"
	"sync"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"gorm.io/gorm"
)

// CategoryRepository serves the category reference data, cached the same way
// as TypeRepository: loaded once, never invalidated while the process lives.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
	GetByTypeID(ctx context.Context, typeID int) ([]model.Category, error)
}

type categoryRepository struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache []model.Category
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) GetByTypeID(ctx context.Context, typeID int) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.TypeID == typeID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// load must be called with the lock held.
func (r *categoryRepository) load(ctx context.Context) ([]model.Category, error) {
	if r.cache != nil {
		return r.cache, nil
	}
	if r.db == nil {
		return nil, ErrDBNotReady
	}

	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	r.cache = categories
	return r.cache, nil
}
