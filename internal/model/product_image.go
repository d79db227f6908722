package model

import "time"

// ProductImage 商品图片
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(2048);not null" json:"image_url"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (ProductImage) TableName() string { return "product_images" }
