package models

import "time"

// User is keyed by the normalized (lower-cased) email address. The
// password hash never serializes into a response body.
type User struct {
	Email      string `gorm:"primaryKey"                json:"email"`
	FirstName  string `gorm:"not null"                  json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `gorm:"not null"                  json:"lastName"`
	UserType   string `gorm:"not null;default:customer" json:"userType"`
	Password   string `gorm:"not null"                  json:"-"`
}

type Product struct {
	ProductID          string `gorm:"primaryKey"                             json:"productID"`
	ProductName        string `gorm:"not null"                               json:"productName"`
	ProductDescription string `gorm:"not null;size:500"                      json:"productDescription"`
	ProductType        int    `gorm:"not null"                               json:"productType"`
	ProductQuantity    int    `gorm:"not null;check:product_quantity >= 0"   json:"productQuantity"`
}

type OrderTransaction struct {
	TransactionID      string    `gorm:"primaryKey"                          json:"transactionID"`
	ProductID          string    `gorm:"index;not null"                      json:"productID"`
	OrderQuantity      int       `gorm:"not null;check:order_quantity > 0"   json:"orderQuantity"`
	ProductDescription string    `gorm:"not null;size:500"                   json:"productDescription"`
	OrderStatus        int       `gorm:"not null;default:0"                  json:"orderStatus"`
	Email              string    `gorm:"index;not null"                      json:"email"`
	DateOrdered        time.Time `gorm:"not null"                            json:"dateOrdered"`
}

const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
)

// All lists every table of this backend for migration.
func All() []any {
	return []any{&User{}, &Product{}, &OrderTransaction{}}
}
