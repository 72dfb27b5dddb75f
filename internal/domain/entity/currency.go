package entity

// Currency is a sellable currency with its exchange rate against the
// store's primary currency.
type Currency struct {
	ID           int
	Name         string
	Symbol       string
	ExchangeRate float64
	IsPrimary    bool
}

func (c *Currency) EntityID() int      { return c.ID }
func (c *Currency) SetEntityID(id int) { c.ID = id }
