package model

import "time"

// OrderStatus 订单状态（闭集，入口校验拒绝未知值）
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid 是否为已知状态
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 订单
// 删除用户级联删除其订单；删除地址仅置空 address_id，订单保留
type Order struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	UserID           uint        `gorm:"index;not null" json:"user_id"`
	AddressID        *uint       `gorm:"index" json:"address_id"`
	TotalAmount      float64     `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	Status           OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod    *string     `gorm:"type:varchar(64)" json:"payment_method"`
	PaymentReference *string     `gorm:"type:varchar(255)" json:"payment_reference"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Address *Address `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Order) TableName() string { return "orders" }
