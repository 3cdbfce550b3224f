package validation

import (
	"context"
	"sync"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
)

// ValidateCartItems checks every cart item and returns exactly one
// verdict per item id, even when individual lookups fail. Items missing
// booking fields are settled locally without a network call; the rest
// are dispatched concurrently so batch latency is gated on the slowest
// lookup, not the cart size. The map is assembled only after every
// dispatched check has settled.
//
// No lock spans the batch: two carts racing for the last spot can both
// see it free. The verdicts are advisory; the atomic capacity decrement
// happens at purchase commit, outside this engine.
func (s *Service) ValidateCartItems(ctx context.Context, items []CartItem) map[string]Verdict {
	norm := make([]normalizedItem, len(items))
	verdicts := make([]Verdict, len(items))

	var wg sync.WaitGroup
	for i := range items {
		norm[i] = normalizeItem(items[i])
		if !norm[i].complete() {
			verdicts[i] = invalidVerdict(MsgMissingInfo)
			continue
		}

		wg.Add(1)
		go func(i int, n normalizedItem) {
			defer wg.Done()
			verdicts[i] = s.ValidateSlot(ctx, domain.PackageType(n.PackageType), n.PackageID, n.Date, n.Time, n.Guests)
		}(i, norm[i])
	}
	wg.Wait()

	out := make(map[string]Verdict, len(items))
	for i := range items {
		out[norm[i].ID] = verdicts[i]
	}
	return out
}
