package transport

import "time"

type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	UserType   string `json:"userType"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// UpdateUserRequest mirrors the legacy form: firstName and lastName are
// always written, middleName only when the field is present in the body.
type UpdateUserRequest struct {
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   string  `json:"lastName"`
}

type CreateProductRequest struct {
	ProductID          string `json:"productID"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	ProductType        int    `json:"productType"`
	ProductQuantity    *int   `json:"productQuantity"`
}

type UpdateProductRequest struct {
	ProductQuantity *int `json:"productQuantity"`
}

type CreateOrderRequest struct {
	TransactionID      string     `json:"transactionID"`
	ProductID          string     `json:"productID"`
	OrderQuantity      int        `json:"orderQuantity"`
	ProductDescription string     `json:"productDescription"`
	OrderStatus        *int       `json:"orderStatus"`
	Email              string     `json:"email"`
	DateOrdered        *time.Time `json:"dateOrdered"`
}

type UpdateOrderRequest struct {
	OrderStatus *int `json:"orderStatus"`
}
