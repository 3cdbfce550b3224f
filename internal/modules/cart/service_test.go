package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	svc := NewService(0.028, 0, "RM")

	s := svc.Summarize([]Item{
		{ID: "a", Price: 150.00},
		{ID: "b", Price: 89.90},
	})

	assert.Equal(t, "RM", s.Currency)
	assert.Equal(t, 2, s.ItemCount)
	assert.Equal(t, 239.90, s.Subtotal)
	assert.Equal(t, 6.72, s.BankCharge) // 239.90 * 0.028 = 6.7172
	assert.Equal(t, 0.0, s.Tax)
	assert.Equal(t, 246.62, s.Total)
}

func TestSummarize_WithTax(t *testing.T) {
	svc := NewService(0.028, 0.06, "RM")

	s := svc.Summarize([]Item{{ID: "a", Price: 100}})

	assert.Equal(t, 100.0, s.Subtotal)
	assert.Equal(t, 2.80, s.BankCharge)
	assert.Equal(t, 6.0, s.Tax)
	assert.Equal(t, 108.80, s.Total)
}

func TestSummarize_EmptyCart(t *testing.T) {
	svc := NewService(0.028, 0, "RM")

	s := svc.Summarize(nil)

	assert.Equal(t, 0, s.ItemCount)
	assert.Equal(t, 0.0, s.Subtotal)
	assert.Equal(t, 0.0, s.Total)
}
