package domain

import "time"

type PackageType string

const (
	PackageTour     PackageType = "tour"
	PackageTransfer PackageType = "transfer"
)

func (p PackageType) Valid() bool {
	return p == PackageTour || p == PackageTransfer
}

// TimeSlot is one bookable departure of a package on a concrete date.
// Date is stored as the canonical YYYY-MM-DD string to keep lookups
// timezone-free; Time is the display label ("09:00").
type TimeSlot struct {
	ID          int64       `json:"id"`
	PackageType PackageType `json:"package_type" gorm:"size:16;uniqueIndex:idx_slot_identity" validate:"required,oneof=tour transfer"`
	PackageID   string      `json:"package_id" gorm:"size:24;uniqueIndex:idx_slot_identity" validate:"required,hexadecimal,len=24"`
	Date        string      `json:"date" gorm:"size:10;uniqueIndex:idx_slot_identity" validate:"required,datetime=2006-01-02"`
	Time        string      `json:"time" gorm:"size:8;uniqueIndex:idx_slot_identity" validate:"required"`
	Capacity    int         `json:"capacity" validate:"gte=0"`
	BookedCount int         `json:"booked_count" validate:"gte=0"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
