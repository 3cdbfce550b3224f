package cart

import "math"

// Service turns per-item prices into the summary lines checkout
// renders: subtotal, bank charge, tax, total. Prices arrive already
// computed upstream (per-item totals); this is arithmetic only.
type Service struct {
	bankChargeRate float64
	taxRate        float64
	currency       string
}

func NewService(bankChargeRate, taxRate float64, currency string) *Service {
	return &Service{
		bankChargeRate: bankChargeRate,
		taxRate:        taxRate,
		currency:       currency,
	}
}

func (s *Service) Summarize(items []Item) Summary {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price
	}
	subtotal = round2(subtotal)

	bankCharge := round2(subtotal * s.bankChargeRate)
	tax := round2(subtotal * s.taxRate)

	return Summary{
		Currency:   s.currency,
		ItemCount:  len(items),
		Subtotal:   subtotal,
		BankCharge: bankCharge,
		Tax:        tax,
		Total:      round2(subtotal + bankCharge + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
