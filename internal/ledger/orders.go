package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
	"github.com/juanchocce/proyecto-restaurante/internal/core"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

// Flag names accepted by Orders.Toggle.
const (
	FlagDelivered = "delivered"
	FlagPaid      = "paid"
)

// Orders is the sold-dishes ledger: it stamps new records with the current
// menu price and owns the delivered/paid workflow flags.
type Orders struct {
	store *Store[core.Order]
	menu  *catalog.Store
	clock func() time.Time
}

// NewOrders wires the orders ledger to its persistence backend and the menu
// catalog. clock may be nil outside tests.
func NewOrders(backend Backend[core.Order], menu *catalog.Store, logger *applog.Logger, clock func() time.Time) *Orders {
	if clock == nil {
		clock = time.Now
	}
	return &Orders{
		store: NewStore("orders", backend, logger),
		menu:  menu,
		clock: clock,
	}
}

func (o *Orders) Load(ctx context.Context) error { return o.store.Load(ctx) }

func (o *Orders) Records() []core.Order { return o.store.Records() }

func (o *Orders) Skipped() []RowIssue { return o.store.Skipped() }

func (o *Orders) NextID() int64 { return o.store.NextID() }

// Add creates an order for the named dish at its current menu price. The
// dish must exist in the menu right now; deleting it later does not touch
// records created here.
func (o *Orders) Add(ctx context.Context, client, dish string, quantity int64, method core.PaymentMethod) (core.Order, error) {
	price, ok := o.menu.Price(dish)
	if !ok {
		return core.Order{}, fmt.Errorf("%w: %q", core.ErrCatalogMiss, dish)
	}
	if quantity < 1 {
		return core.Order{}, core.ErrInvalidQuantity
	}
	if strings.TrimSpace(string(method)) == "" {
		method = core.Cash
	}

	return o.store.Append(ctx, func(id int64) core.Order {
		return core.Order{
			ID:            id,
			Timestamp:     core.NewTimestamp(o.clock()),
			Client:        client,
			Dish:          dish,
			Quantity:      quantity,
			UnitPrice:     price,
			Subtotal:      float64(quantity) * price,
			PaymentMethod: method,
		}
	})
}

// Delete removes the order with the given id; absent ids are a no-op.
func (o *Orders) Delete(ctx context.Context, id int64) error {
	return o.store.Delete(ctx, id)
}

// Toggle flips the delivered or paid flag. The boolean return is false when
// no order has that id.
func (o *Orders) Toggle(ctx context.Context, id int64, flag string) (core.Order, bool, error) {
	switch flag {
	case FlagDelivered, FlagPaid:
	default:
		return core.Order{}, false, fmt.Errorf("unknown flag %q", flag)
	}
	return o.store.Update(ctx, id, func(ord core.Order) core.Order {
		if flag == FlagDelivered {
			ord.Delivered = !ord.Delivered
		} else {
			ord.Paid = !ord.Paid
		}
		return ord
	})
}

// UpdateDate replaces only the date portion of the order's timestamp,
// keeping the original time of day.
func (o *Orders) UpdateDate(ctx context.Context, id int64, date string) (core.Order, bool, error) {
	if err := core.ValidateDate(date); err != nil {
		return core.Order{}, false, err
	}
	return o.store.Update(ctx, id, func(ord core.Order) core.Order {
		ord.Timestamp = ord.Timestamp.WithDate(date)
		return ord
	})
}
