package repository

import (
	"testing"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Item{}, &model.DeletedItem{}, &model.ItemType{}, &model.Category{}))
	return db
}
