package model

import "time"

// DeletedItem is an append-only archive row written when an item is deleted.
// The application never reads it back. The archive has its own row id because
// item ids can be reused after the max id is deleted.
type DeletedItem struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	ItemID       int        `gorm:"not null"`
	Name         string     `gorm:"size:200;not null"`
	Description  string     `gorm:"size:1000;not null"`
	TypeID       int        `gorm:"not null"`
	CategoryID   int        `gorm:"not null"`
	ProductCode  string     `gorm:"size:32;not null"`
	Price        float64    `gorm:"type:decimal(12,2);not null"`
	Quantity     int        `gorm:"not null"`
	Discount     float64    `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountDate *time.Time
	CreatedAt    time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt    time.Time  `gorm:"autoCreateTime:false"`
}

func (DeletedItem) TableName() string {
	return "deleted_items"
}

// ArchivedItem copies a live item into its archive form.
func ArchivedItem(item Item, deletedAt time.Time) DeletedItem {
	return DeletedItem{
		ItemID:       item.ID,
		Name:         item.Name,
		Description:  item.Description,
		TypeID:       item.TypeID,
		CategoryID:   item.CategoryID,
		ProductCode:  item.ProductCode,
		Price:        item.Price,
		Quantity:     item.Quantity,
		Discount:     item.Discount,
		DiscountDate: item.DiscountDate,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
