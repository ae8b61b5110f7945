// AngelaMos | 2026
// status.go

package order

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPlaced         Status = "Placed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var sequence = []Status{
	StatusPlaced,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Rank is the position of s in the delivery pipeline, or -1 for an unknown
// status.
func (s Status) Rank() int {
	for i, st := range sequence {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Next returns the following status. ok is false for Delivered and for
// unknown statuses.
func (s Status) Next() (Status, bool) {
	r := s.Rank()
	if r < 0 || r == len(sequence)-1 {
		return "", false
	}
	return sequence[r+1], true
}

// Advance moves s to `to`, which must be the immediate successor.
func (s Status) Advance(to Status) (Status, error) {
	next, ok := s.Next()
	if !ok || next != to {
		return s, fmt.Errorf("%s -> %s: %w", s, to, ErrInvalidTransition)
	}
	return next, nil
}

// Message is the shopper-facing line for the status.
func (s Status) Message() string {
	switch s {
	case StatusPlaced:
		return "Order placed successfully! Cash on delivery."
	case StatusPreparing:
		return "Your order is being prepared."
	case StatusOutForDelivery:
		return "Your order is out for delivery."
	case StatusDelivered:
		return "Your order has been delivered."
	default:
		return ""
	}
}
