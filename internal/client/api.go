package client

import (
	"context"
	"time"
)

// Item mirrors the server's enriched item payload.
type Item struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TypeID       int        `json:"typeId"`
	TypeName     string     `json:"typeName"`
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	ProductCode  string     `json:"productCode"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
	Discount     float64    `json:"discount"`
	DiscountDate *time.Time `json:"discountDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type ItemType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	TypeID int    `json:"typeId"`
}

type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TypeID      int     `json:"typeId"`
	CategoryID  int     `json:"categoryId"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Discount    float64 `json:"discount"`
}

// API is the remote item service as seen by the client. Not-found comes back
// as (nil, nil) / (false, nil); failures are either *TransportError or
// *APIError.
type API interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int) (*Item, error)
	SearchItems(ctx context.Context, query string) ([]Item, error)
	CreateItem(ctx context.Context, input ItemInput) (*Item, error)
	UpdateItem(ctx context.Context, id int, input ItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id int) (bool, error)
	ListTypes(ctx context.Context) ([]ItemType, error)
	ListCategories(ctx context.Context, typeID *int) ([]Category, error)
}
