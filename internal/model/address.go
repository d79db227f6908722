package model

import "time"

// Address 收货地址
type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       *uint     `gorm:"index" json:"user_id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone        string    `gorm:"type:varchar(32);not null" json:"phone"`
	AddressLine1 string    `gorm:"type:varchar(255);not null" json:"address_line1"`
	AddressLine2 *string   `gorm:"type:varchar(255)" json:"address_line2"`
	City         string    `gorm:"type:varchar(128);not null" json:"city"`
	State        string    `gorm:"type:varchar(128);not null" json:"state"`
	Pincode      string    `gorm:"type:varchar(32);not null" json:"pincode"`
	Country      *string   `gorm:"type:varchar(128)" json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Address) TableName() string { return "addresses" }
