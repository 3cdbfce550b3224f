package cart

// Item carries the upstream-computed total price of one cart line.
type Item struct {
	ID    string  `json:"id"`
	Price float64 `json:"price" validate:"gte=0"`
}

type SummaryRequest struct {
	Items []Item `json:"items"`
}

type Summary struct {
	Currency   string  `json:"currency"`
	ItemCount  int     `json:"itemCount"`
	Subtotal   float64 `json:"subtotal"`
	BankCharge float64 `json:"bankCharge"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}
