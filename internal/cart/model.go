package cart

// CartLine is one product held client-side pending checkout. Price is
// a snapshot taken at add time and is not re-fetched.
type CartLine struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Lines       []CartLine `json:"cartItems"`
	TotalAmount float64    `json:"totalAmount"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func totalOf(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
