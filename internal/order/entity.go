// AngelaMos | 2026
// entity.go

package order

import (
	"time"
)

type Order struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Status      Status `json:"status"`
	Rating      int    `json:"rating"`
}

// Tracking is the progress view of the most recent checkout. Only the
// final Delivered step of it is ever persisted.
type Tracking struct {
	BatchID   string    `json:"batchId,omitempty"`
	Order     Order     `json:"order"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CheckoutResult struct {
	BatchID  string   `json:"batchId"`
	Orders   []Order  `json:"orders"`
	Tracking Tracking `json:"tracking"`
}

// Event is the payload published for every lifecycle step.
type Event struct {
	BatchID  string   `json:"batchId"`
	OrderIDs []string `json:"orderIds"`
	Status   Status   `json:"status"`
	Scope    string   `json:"scope,omitempty"`
}
