package models

// CreateOrderRequest is the payload accepted by POST /api/orders/create.
// A client may send a price per item; it is ignored, pricing always comes
// from the server-side catalog.
type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items"`
	Customer CustomerRequest    `json:"customer"`
}

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
