package model

// Customer represents a customer row
type Customer struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"type:text;not null"`
}

// TableName maps Customer to the singular table used by the schema
func (Customer) TableName() string {
	return "customer"
}
