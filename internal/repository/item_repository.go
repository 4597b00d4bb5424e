package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

// ItemRepository is the durable item store. Add assigns identity, Update
// preserves CreatedAt and ProductCode, Delete archives the removed row.
// Not-found is signaled as (nil, nil) / (false, nil), never as an error.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id int) (*model.Item, error)
	Search(ctx context.Context, query string) ([]model.Item, error)
	Add(ctx context.Context, item model.Item) (*model.Item, error)
	Update(ctx context.Context, item model.Item) (*model.Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type itemRepository struct {
	db *gorm.DB

	// One lock per instance serializing every operation end to end, so a
	// read-modify-write span (max-id scan then insert, load then save) is
	// never interleaved with another caller's.
	mu sync.Mutex
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findByID(ctx, id)
}

func (r *itemRepository) Search(ctx context.Context, query string) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	pattern := "%" + strings.ToLower(query) + "%"
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(product_code) LIKE ?",
			pattern, pattern, pattern).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Add(ctx context.Context, item model.Item) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int
	if err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return nil, err
	}

	item.ID = maxID + 1
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = nil

	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item model.Item) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.findByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	// CreatedAt and ProductCode survive every update regardless of input.
	item.CreatedAt = existing.CreatedAt
	item.ProductCode = existing.ProductCode
	now := time.Now().UTC()
	item.UpdatedAt = &now

	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int) (bool, error) {
	if r.db == nil {
		return false, ErrDBNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.findByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Delete(&model.Item{}, id).Error; err != nil {
		return false, err
	}

	archived := model.ArchivedItem(*existing, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&archived).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *itemRepository) findByID(ctx context.Context, id int) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
