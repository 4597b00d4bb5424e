package model

type ItemType struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:120;not null;uniqueIndex:uk_item_types_name"`
}

func (ItemType) TableName() string {
	return "item_types"
}
