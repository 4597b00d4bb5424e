package service

import (
	"context"
	"testing"
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) ItemService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Item{}, &model.DeletedItem{}, &model.ItemType{}, &model.Category{}))

	require.NoError(t, db.Create(&[]model.ItemType{
		{ID: 1, Name: "Electronics"},
	}).Error)
	require.NoError(t, db.Create(&[]model.Category{
		{ID: 1, Name: "Phones", Prefix: "PHN", TypeID: 1},
		{ID: 2, Name: "Laptops", Prefix: "LPT", TypeID: 1},
	}).Error)

	return NewItemService(
		repository.NewItemRepository(db),
		repository.NewTypeRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func phoneInput(name, description string) ItemInput {
	return ItemInput{
		Name:        name,
		Description: description,
		TypeID:      1,
		CategoryID:  1,
		Price:       10,
		Quantity:    1,
	}
}

func TestCreateGeneratesFirstProductCode(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), phoneInput("Phone A", "D1"))
	require.NoError(t, err)
	assert.Equal(t, "PHN-001", created.ProductCode)
	assert.Nil(t, created.DiscountDate)
	assert.Equal(t, "Electronics", created.TypeName)
	assert.Equal(t, "Phones", created.CategoryName)
}

func TestCreateIncrementsProductCodePerCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	second, err := svc.Create(ctx, phoneInput("Phone B", "D2"))
	require.NoError(t, err)
	assert.Equal(t, "PHN-002", second.ProductCode)

	laptop := phoneInput("Laptop A", "D3")
	laptop.CategoryID = 2
	third, err := svc.Create(ctx, laptop)
	require.NoError(t, err)
	assert.Equal(t, "LPT-001", third.ProductCode)
}

func TestCreateDuplicateNameCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, phoneInput("phone a", "D2"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Field)
	assert.Contains(t, conflict.Message, "name")
}

func TestCreateDuplicateDescriptionCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "Same Description"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, phoneInput("Phone B", "same description"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "description", conflict.Field)
}

func TestCreateUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	input := phoneInput("Phone A", "D1")
	input.CategoryID = 99
	_, err := svc.Create(context.Background(), input)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "99")
}

// A request with both a duplicate name and a bad category reports the
// duplicate name.
func TestCreateConflictWinsOverBadCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	input := phoneInput("Phone A", "D2")
	input.CategoryID = 99
	_, err = svc.Create(ctx, input)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Field)
}

func TestCreateWithDiscountSetsDiscountDate(t *testing.T) {
	svc := newTestService(t)

	input := phoneInput("Phone A", "D1")
	input.Discount = 0.01
	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, created.DiscountDate)
	assert.WithinDuration(t, time.Now().UTC(), *created.DiscountDate, 5*time.Second)
}

func TestUpdateDiscountDateTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)
	require.Nil(t, created.DiscountDate)

	// 0 -> 15: discount newly applied, stamp now.
	input := phoneInput("Phone A", "D1")
	input.Discount = 15
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.DiscountDate)
	assert.WithinDuration(t, time.Now().UTC(), *updated.DiscountDate, 5*time.Second)
	firstDate := *updated.DiscountDate

	// 15 -> 30: still active, date preserved.
	input.Discount = 30
	updated, err = svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	require.NotNil(t, updated.DiscountDate)
	assert.Equal(t, firstDate.Unix(), updated.DiscountDate.Unix())

	// 30 -> 0: discount removed, date cleared.
	input.Discount = 0
	updated, err = svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Nil(t, updated.DiscountDate)
}

func TestUpdateRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	input := ItemInput{
		Name:        "Phone A2",
		Description: "D1 revised",
		TypeID:      1,
		CategoryID:  2,
		Price:       25.5,
		Quantity:    7,
		Discount:    5,
	}
	_, err = svc.Update(ctx, created.ID, input)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Description, got.Description)
	assert.Equal(t, input.TypeID, got.TypeID)
	assert.Equal(t, input.CategoryID, got.CategoryID)
	assert.Equal(t, input.Price, got.Price)
	assert.Equal(t, input.Quantity, got.Quantity)
	assert.Equal(t, input.Discount, got.Discount)
	assert.Equal(t, created.ProductCode, got.ProductCode)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestUpdateExcludesSelfFromUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	// Re-submitting the item's own name and description is not a conflict.
	updated, err := svc.Update(ctx, created.ID, phoneInput("Phone A", "D1"))
	require.NoError(t, err)
	require.NotNil(t, updated)
}

func TestUpdateConflictAgainstOtherItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, phoneInput("Phone B", "D2"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, phoneInput("PHONE A", "D2"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Field)
}

// The uniqueness check runs before the store decides the id does not exist.
func TestUpdateMissingIDStillChecksUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, 42, phoneInput("Phone A", "D2"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	updated, err := svc.Update(ctx, 42, phoneInput("Phone Z", "DZ"))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)

	found, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	found, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchBlankQueryListsAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoneInput("Phone A", "D1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, phoneInput("Phone B", "D2"))
	require.NoError(t, err)

	all, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.Search(ctx, "phone b")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Phone B", matched[0].Name)

	none, err := svc.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListEmptyStore(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEnrichmentUsesSentinelForUnknownType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Type existence is not validated at create time; an unknown type id
	// renders as the sentinel name rather than an error.
	input := phoneInput("Phone A", "D1")
	input.TypeID = 99
	created, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, UnknownName, created.TypeName)
	assert.Equal(t, "Phones", created.CategoryName)
}

// Every read path must uphold (discount > 0) == (discountDate != nil).
func TestDiscountDateInvariantAcrossReads(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	plain := phoneInput("Phone A", "D1")
	discounted := phoneInput("Phone B", "D2")
	discounted.Discount = 25

	_, err := svc.Create(ctx, plain)
	require.NoError(t, err)
	_, err = svc.Create(ctx, discounted)
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, it.Discount > 0, it.DiscountDate != nil,
			"item %d violates the discount-date invariant", it.ID)
	}
}
