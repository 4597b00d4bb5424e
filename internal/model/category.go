package model

// Category is reference data. Prefix seeds generated product codes
// (e.g. "PHN" for "PHN-001").
type Category struct {
	ID     int    `gorm:"primaryKey"`
	Name   string `gorm:"size:120;not null;uniqueIndex:uk_categories_name"`
	Prefix string `gorm:"size:8;not null"`
	TypeID int    `gorm:"not null"`
}

func (Category) TableName() string {
	return "categories"
}
