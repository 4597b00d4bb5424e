package model

import "time"

// Item is a live inventory record. The repository assigns ID and CreatedAt;
// the service assigns ProductCode and DiscountDate. None of these are taken
// from client input after creation.
type Item struct {
	ID           int        `gorm:"primaryKey"`
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
}

func (Item) TableName() string {
	return "items"
}
