package model

// Order represents a customer order. customer_id and product_id reference
// the customer and product tables; referential integrity is enforced by the
// database, not by this service.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID string    `json:"customer_id" gorm:"type:uuid;not null;index"`
	ProductID  string    `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	OrderDate  Timestamp `json:"order_date" gorm:"not null"`
}

// TableName maps Order to the singular (reserved-word) table used by the schema
func (Order) TableName() string {
	return "order"
}

// OrderRequest is the order creation request body. The id and order_date are
// assigned server-side and cannot be supplied by the caller. Quantity is a
// pointer so that an explicit 0 passes the required check; only a missing or
// non-integer value is a binding error.
type OrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	ProductID  string `json:"product_id" binding:"required,uuid"`
	Quantity   *int   `json:"quantity" binding:"required"`
}
