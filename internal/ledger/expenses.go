package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
	"github.com/juanchocce/proyecto-restaurante/internal/core"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

// Expenses is the purchased-costs ledger. Its id space is independent from
// the orders ledger and quantities may be fractional.
type Expenses struct {
	store *Store[core.Expense]
	costs *catalog.Store
	clock func() time.Time
}

func NewExpenses(backend Backend[core.Expense], costs *catalog.Store, logger *applog.Logger, clock func() time.Time) *Expenses {
	if clock == nil {
		clock = time.Now
	}
	return &Expenses{
		store: NewStore("expenses", backend, logger),
		costs: costs,
		clock: clock,
	}
}

func (e *Expenses) Load(ctx context.Context) error { return e.store.Load(ctx) }

func (e *Expenses) Records() []core.Expense { return e.store.Records() }

func (e *Expenses) Skipped() []RowIssue { return e.store.Skipped() }

func (e *Expenses) NextID() int64 { return e.store.NextID() }

// Add creates an expense for the named cost item at its current dictionary
// price.
func (e *Expenses) Add(ctx context.Context, item string, quantity float64) (core.Expense, error) {
	price, ok := e.costs.Price(item)
	if !ok {
		return core.Expense{}, fmt.Errorf("%w: %q", core.ErrCatalogMiss, item)
	}
	if quantity <= 0 {
		return core.Expense{}, core.ErrInvalidQuantity
	}

	return e.store.Append(ctx, func(id int64) core.Expense {
		return core.Expense{
			ID:        id,
			Timestamp: core.NewTimestamp(e.clock()),
			Item:      item,
			Quantity:  quantity,
			UnitPrice: price,
			Total:     quantity * price,
		}
	})
}

func (e *Expenses) Delete(ctx context.Context, id int64) error {
	return e.store.Delete(ctx, id)
}

// UpdateDate replaces only the date portion of the expense's timestamp.
func (e *Expenses) UpdateDate(ctx context.Context, id int64, date string) (core.Expense, bool, error) {
	if err := core.ValidateDate(date); err != nil {
		return core.Expense{}, false, err
	}
	return e.store.Update(ctx, id, func(exp core.Expense) core.Expense {
		exp.Timestamp = exp.Timestamp.WithDate(date)
		return exp
	})
}
