package model

import "time"

// OrderItem 订单明细
// product_id 可空：商品下架删除后订单历史不受影响
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID *uint     `gorm:"index" json:"product_id"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Order   Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}

func (OrderItem) TableName() string { return "order_items" }
