package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketplacePurchase is a single-product purchase.
type MarketplacePurchase struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Status      RecordStatus    `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (p MarketplacePurchase) GetID() int64            { return p.ID }
func (p MarketplacePurchase) GetUserID() int64        { return p.UserID }
func (p MarketplacePurchase) GetCreatedAt() time.Time { return p.CreatedAt }

func (p *MarketplacePurchase) Stamp(id int64, createdAt time.Time) {
	p.ID = id
	p.CreatedAt = createdAt
}

// OrderItem is one cart line of a marketplace order. Items and shipping
// details are stored with the keys the client sends.
type OrderItem struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
}

// ShippingDetails is where an order is delivered.
type ShippingDetails struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

// MarketplaceOrder is a cart checkout. Orders start pending and are moved on
// by fulfillment outside this service.
type MarketplaceOrder struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	ShippingDetails ShippingDetails `json:"shipping_details"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          RecordStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (o MarketplaceOrder) GetID() int64            { return o.ID }
func (o MarketplaceOrder) GetUserID() int64        { return o.UserID }
func (o MarketplaceOrder) GetCreatedAt() time.Time { return o.CreatedAt }

func (o *MarketplaceOrder) Stamp(id int64, createdAt time.Time) {
	o.ID = id
	o.CreatedAt = createdAt
}
