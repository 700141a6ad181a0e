package fake

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

// Order is one row of the demo list.
type Order struct {
	N        int
	OrderID  int
	Customer string
	Paid     bool
}

func (o Order) String() string {
	return fmt.Sprintf("#%d order %d for %s (paid: %s)", o.N, o.OrderID, o.Customer, strconv.FormatBool(o.Paid))
}

// Orders adapts a slice of orders to the list and filter interfaces.
type Orders []Order

func (o Orders) Len() int {
	return len(o)
}

// String returns the text the filter matches against.
func (o Orders) String(i int) string {
	return o[i].Customer
}

// Generate returns n orders numbered from 0. The same non-zero seed always
// yields the same orders; seed 0 picks a random one.
func Generate(n int, seed int64) Orders {
	if n <= 0 {
		return Orders{}
	}
	f := gofakeit.New(uint64(seed))
	orders := make(Orders, n)
	for i := range orders {
		orders[i] = Order{
			N:        i,
			OrderID:  f.IntRange(1000, 1999),
			Customer: f.Name(),
			Paid:     f.Bool(),
		}
	}
	return orders
}
