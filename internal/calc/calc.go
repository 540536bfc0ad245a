// Package calc implements the line-item revenue calculator: named sale
// items with a unit price and a die size, quantities rolled at add time,
// aggregated into one two-stage business report. The working set is a
// transient context, not a conversation session.
package calc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"universalis/internal/dice"
	"universalis/internal/money"
	"universalis/internal/tax"
)

// MaxItems caps the working set of one calculation.
const MaxItems = 10

var (
	ErrTooManyItems = errors.New("calculator holds at most 10 items")
	ErrBadDie       = errors.New("unsupported die size")
)

// LineItem is one sale: revenue = unit price times the rolled quantity.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	DieFaces  int
	Quantity  int
}

// Revenue returns the item's contribution to gross revenue.
func (li LineItem) Revenue() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Context accumulates line items for a single report.
type Context struct {
	items  []LineItem
	roller dice.Source
}

// NewContext returns an empty calculator drawing quantities from roller.
func NewContext(roller dice.Source) *Context {
	if roller == nil {
		roller = dice.Default()
	}
	return &Context{roller: roller}
}

// AddItem rolls a quantity for the item and adds it to the working set.
// The die size must be one of the accepted sizes.
func (c *Context) AddItem(name string, unitPrice decimal.Decimal, dieFaces int) (LineItem, error) {
	if len(c.items) >= MaxItems {
		return LineItem{}, ErrTooManyItems
	}
	if !money.ValidDieFaces(dieFaces) {
		return LineItem{}, fmt.Errorf("%w: d%d", ErrBadDie, dieFaces)
	}
	item := LineItem{
		Name:      name,
		UnitPrice: unitPrice,
		DieFaces:  dieFaces,
		Quantity:  c.roller.Roll(dieFaces),
	}
	c.items = append(c.items, item)
	return item, nil
}

// Items returns a copy of the working set.
func (c *Context) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// GrossRevenue sums the revenue of every item.
func (c *Context) GrossRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.Revenue())
	}
	return total
}

// Report computes the business report for the accumulated revenue against
// the given rates. The calculator may include the CEO salary stage.
func (c *Context) Report(expenses decimal.Decimal, rates tax.Rates, includeSalary bool) tax.BusinessReport {
	return tax.ComputeBusinessReport(c.GrossRevenue(), expenses, rates, includeSalary)
}
