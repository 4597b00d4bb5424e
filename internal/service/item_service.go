package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/repository"
)

// UnknownName is substituted when an item's type or category id does not
// resolve against the reference data.
const UnknownName = "Unknown"

// ItemInput carries the caller-settable item fields. ID, ProductCode,
// CreatedAt and UpdatedAt are owned by the service and the store.
type ItemInput struct {
	Name        string
	Description string
	TypeID      int
	CategoryID  int
	Price       float64
	Quantity    int
	Discount    float64
}

// EnrichedItem is an item with its type and category names resolved.
// Computed per read, never persisted.
type EnrichedItem struct {
	model.Item
	TypeName     string
	CategoryName string
}

// ItemService enforces the item business rules: case-insensitive name and
// description uniqueness, product-code generation, and discount-date
// transitions. It holds no state and no lock of its own; each mutating call
// re-reads the store. The uniqueness check and product-code scan run against
// a snapshot taken before the write, so two concurrent creates can pass both
// against the same snapshot. Callers needing strict serializability must
// queue create/update calls externally.
type ItemService interface {
	List(ctx context.Context) ([]EnrichedItem, error)
	Get(ctx context.Context, id int) (*EnrichedItem, error)
	Search(ctx context.Context, query string) ([]EnrichedItem, error)
	Create(ctx context.Context, input ItemInput) (*EnrichedItem, error)
	Update(ctx context.Context, id int, input ItemInput) (*EnrichedItem, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type itemService struct {
	items      repository.ItemRepository
	types      repository.TypeRepository
	categories repository.CategoryRepository
}

func NewItemService(items repository.ItemRepository, types repository.TypeRepository, categories repository.CategoryRepository) ItemService {
	return &itemService{items: items, types: types, categories: categories}
}

func (s *itemService) List(ctx context.Context) ([]EnrichedItem, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, items)
}

func (s *itemService) Get(ctx context.Context, id int) (*EnrichedItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	return s.enrichOne(ctx, *item)
}

func (s *itemService) Search(ctx context.Context, query string) ([]EnrichedItem, error) {
	var (
		items []model.Item
		err   error
	)
	if strings.TrimSpace(query) == "" {
		items, err = s.items.GetAll(ctx)
	} else {
		items, err = s.items.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, items)
}

func (s *itemService) Create(ctx context.Context, input ItemInput) (*EnrichedItem, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Uniqueness before category resolution: a request with both a duplicate
	// name and a bad category reports the conflict.
	if err := validateUniqueness(items, input.Name, input.Description, 0); err != nil {
		return nil, err
	}

	code, err := s.generateProductCode(ctx, input.CategoryID, items)
	if err != nil {
		return nil, err
	}

	item := model.Item{
		Name:        input.Name,
		Description: input.Description,
		TypeID:      input.TypeID,
		CategoryID:  input.CategoryID,
		ProductCode: code,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Discount:    input.Discount,
	}
	if input.Discount > 0 {
		now := time.Now().UTC()
		item.DiscountDate = &now
	}

	created, err := s.items.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	return s.enrichOne(ctx, *created)
}

func (s *itemService) Update(ctx context.Context, id int, input ItemInput) (*EnrichedItem, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Runs even when id turns out not to exist; existence is the store's call.
	if err := validateUniqueness(items, input.Name, input.Description, id); err != nil {
		return nil, err
	}

	item := model.Item{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		TypeID:      input.TypeID,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Discount:    input.Discount,
	}

	if existing := findByID(items, id); existing != nil {
		switch {
		case input.Discount > 0 && existing.Discount == 0:
			// Discount newly applied.
			now := time.Now().UTC()
			item.DiscountDate = &now
		case input.Discount == 0:
			// Discount removed.
			item.DiscountDate = nil
		default:
			// Discount adjusted but still active.
			item.DiscountDate = existing.DiscountDate
		}
	}

	updated, err := s.items.Update(ctx, item)
	if err != nil || updated == nil {
		return nil, err
	}
	return s.enrichOne(ctx, *updated)
}

func (s *itemService) Delete(ctx context.Context, id int) (bool, error) {
	return s.items.Delete(ctx, id)
}

func validateUniqueness(items []model.Item, name, description string, excludeID int) error {
	for _, it := range items {
		if it.ID == excludeID {
			continue
		}
		if strings.EqualFold(it.Name, name) {
			return newNameConflict(name)
		}
	}
	for _, it := range items {
		if it.ID == excludeID {
			continue
		}
		if strings.EqualFold(it.Description, description) {
			return newDescriptionConflict()
		}
	}
	return nil
}

func (s *itemService) generateProductCode(ctx context.Context, categoryID int, items []model.Item) (string, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", &ValidationError{Message: fmt.Sprintf("category with id %d not found", categoryID)}
	}
	return nextProductCode(category.Prefix, items), nil
}

// nextProductCode scans existing codes for the category prefix and picks the
// next 3-digit suffix. Codes that don't parse as "<prefix>-NNN" count as 0.
func nextProductCode(prefix string, items []model.Item) string {
	maxSuffix := 0
	for _, it := range items {
		if !strings.HasPrefix(it.ProductCode, prefix+"-") {
			continue
		}
		suffix := 0
		if parts := strings.Split(it.ProductCode, "-"); len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				suffix = n
			}
		}
		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, maxSuffix+1)
}

func findByID(items []model.Item, id int) *model.Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func (s *itemService) enrichAll(ctx context.Context, items []model.Item) ([]EnrichedItem, error) {
	typeNames, categoryNames, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}
	enriched := make([]EnrichedItem, 0, len(items))
	for _, it := range items {
		enriched = append(enriched, enrich(it, typeNames, categoryNames))
	}
	return enriched, nil
}

func (s *itemService) enrichOne(ctx context.Context, item model.Item) (*EnrichedItem, error) {
	typeNames, categoryNames, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}
	e := enrich(item, typeNames, categoryNames)
	return &e, nil
}

func (s *itemService) lookups(ctx context.Context) (map[int]string, map[int]string, error) {
	types, err := s.types.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	typeNames := make(map[int]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}
	categoryNames := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	return typeNames, categoryNames, nil
}

func enrich(item model.Item, typeNames, categoryNames map[int]string) EnrichedItem {
	typeName, ok := typeNames[item.TypeID]
	if !ok {
		typeName = UnknownName
	}
	categoryName, ok := categoryNames[item.CategoryID]
	if !ok {
		categoryName = UnknownName
	}
	return EnrichedItem{Item: item, TypeName: typeName, CategoryName: categoryName}
}
