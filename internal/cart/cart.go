package cart

// Line is one product in the cart with the quantity accumulated through
// repeated adds.
type Line struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is a session's full cart snapshot. Lines keep insertion order so
// the badge and any future cart page render deterministically.
type Cart struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"lines"`
}

// TotalCount sums quantities across lines. This is the cart badge number.
func (c Cart) TotalCount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return c.TotalCount() == 0
}

// upsert increments the line for productID or appends a new one.
func (c *Cart) upsert(line Line) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// remove drops the line for productID regardless of quantity.
func (c *Cart) remove(productID int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}
