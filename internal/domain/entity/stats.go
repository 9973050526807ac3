package entity

import "github.com/google/uuid"

// CategoryCount is the number of history rows a user has in one category.
type CategoryCount struct {
	CategoryID uuid.UUID
	Code       string
	Count      int
}

// Recommendation is the result of mining a user's purchase history.
type Recommendation struct {
	HasHistory        bool       `json:"has_history"`
	TopCategory       *Category  `json:"top_category,omitempty"`
	CategoryMatches   []*Product `json:"category_matches"`
	DiscountedMatches []*Product `json:"discounted_matches"`
}

// ProductPopularity counts item rows referencing a product.
type ProductPopularity struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Count       int       `json:"count"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	UserCount   int64                `json:"user_count"`
	ActiveUsers int64                `json:"active_users"`
	TopProducts []*ProductPopularity `json:"top_products"`
}
