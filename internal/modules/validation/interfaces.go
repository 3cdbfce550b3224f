package validation

import (
	"context"
	"time"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/inventory"
)

// InventoryQuerier is the read-only slice of the inventory service the
// validator needs. Satisfied by the HTTP client and by the local
// repository.
type InventoryQuerier interface {
	SlotsFor(ctx context.Context, packageType domain.PackageType, packageID, date string) ([]inventory.Slot, error)
}

// ClockSource yields the authoritative current time for expiry checks.
type ClockSource interface {
	Now(ctx context.Context) time.Time
}
