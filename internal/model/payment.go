package model

import "time"

// Payment 支付记录
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"index;not null" json:"order_id"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Provider      *string   `gorm:"type:varchar(64)" json:"provider"`
	Status        *string   `gorm:"type:varchar(32)" json:"status"`
	TransactionID *string   `gorm:"column:transaction_id;type:varchar(255)" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Payment) TableName() string { return "payments" }
