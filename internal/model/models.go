package model

// AllModels 返回全部模型，迁移时父表在前
func AllModels() []interface{} {
	return []interface{}{
		// 无外键依赖
		&User{},
		&Category{},
		&Product{},

		// 单层依赖
		&Address{},       // -> users
		&Cart{},          // -> users
		&ProductImage{},  // -> products
		&ProductReview{}, // -> users, products

		// 多层依赖
		&CartItem{},  // -> carts, products
		&Order{},     // -> users, addresses
		&OrderItem{}, // -> orders, products
		&Payment{},   // -> orders
	}
}
