package core

import (
	"errors"
	"strings"
)

const (
	Cash PaymentMethod = "Efectivo"
	Yape PaymentMethod = "Yape"
	Plin PaymentMethod = "Plin"
)

type (
	// PaymentMethod is an open enumeration: the constants above seed the UI
	// but the storage layer accepts any value.
	PaymentMethod string

	// Order is a single sold line in the orders ledger. UnitPrice is the
	// catalog price captured at creation time; Subtotal is stored redundantly
	// and re-derivable as Quantity*UnitPrice.
	Order struct {
		ID            int64
		Timestamp     Timestamp
		Client        string
		Dish          string
		Quantity      int64
		UnitPrice     float64
		Subtotal      float64
		PaymentMethod PaymentMethod
		Delivered     bool
		Paid          bool
	}

	// Expense is a purchased cost line. Unlike orders, fractional quantities
	// are allowed (e.g. 2.5 kg of fish).
	Expense struct {
		ID        int64
		Timestamp Timestamp
		Item      string
		Quantity  float64
		UnitPrice float64
		Total     float64
	}
)

var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrCatalogMiss     = errors.New("item not in catalog")
	ErrPersistence     = errors.New("persistence failure")
)

// RecordID implements ledger.Record.
func (o Order) RecordID() int64 { return o.ID }

// RecordTime implements ledger.Record.
func (o Order) RecordTime() Timestamp { return o.Timestamp }

func (o Order) Validate() error {
	if strings.TrimSpace(o.Dish) == "" {
		return errors.New("empty dish name")
	}
	if o.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if o.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// RecordID implements ledger.Record.
func (e Expense) RecordID() int64 { return e.ID }

// RecordTime implements ledger.Record.
func (e Expense) RecordTime() Timestamp { return e.Timestamp }

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Item) == "" {
		return errors.New("empty item name")
	}
	if e.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if e.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}
