package model

// Product represents a catalog product row
type Product struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"type:text;not null"`
}

// TableName maps Product to the singular table used by the schema
func (Product) TableName() string {
	return "product"
}
