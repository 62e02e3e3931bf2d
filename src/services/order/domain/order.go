package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Currency is the fixed currency code applied to every order.
	Currency = "USD"

	StatusPending = "pending"
)

type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	Customer    Customer    `json:"customer"`
	TotalAmount float64     `json:"totalAmount"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

var ErrOrderNotFound = errors.New("Order not found")
var ErrProductNotFound = errors.New("Product not found")

// ValidationError marks client input the service refuses to process.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// LineSubtotal computes unitPrice * quantity rounded to 2 decimal places.
func LineSubtotal(unitPrice float64, quantity int) float64 {
	subtotal := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	return subtotal.Round(2).InexactFloat64()
}

// SumSubtotals adds line subtotals and rounds the result to 2 decimal places.
func SumSubtotals(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Subtotal))
	}
	return total.Round(2).InexactFloat64()
}
