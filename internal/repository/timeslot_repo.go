package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/inventory"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TimeSlotRepository is the in-process inventory provider: it answers
// the same Querier contract as the remote HTTP client, backed by the
// local database. The validation engine does not know which one it
// talks to.
type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) SlotsFor(ctx context.Context, packageType domain.PackageType, packageID, date string) ([]inventory.Slot, error) {
	var rows []domain.TimeSlot
	err := r.db.WithContext(ctx).
		Where("package_type = ? AND package_id = ? AND date = ?", packageType, packageID, date).
		Order("time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]inventory.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventory.Slot{
			Time:        row.Time,
			Capacity:    row.Capacity,
			BookedCount: row.BookedCount,
		})
	}
	return out, nil
}

func (r *TimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23505":
			return domain.ErrDuplicateSlot
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return domain.ErrDuplicateSlot
		// the cgo-free sqlite driver is invisible to gorm's translator
		case strings.Contains(err.Error(), "UNIQUE constraint failed"):
			return domain.ErrDuplicateSlot
		}
		return err
	}
	return nil
}

// SetBookedCount overwrites the booked counter for one slot identity.
// Exists for seeding and operational fixes; the validation engine never
// calls it.
func (r *TimeSlotRepository) SetBookedCount(ctx context.Context, packageType domain.PackageType, packageID, date, timeLabel string, booked int) error {
	res := r.db.WithContext(ctx).
		Model(&domain.TimeSlot{}).
		Where("package_type = ? AND package_id = ? AND date = ? AND time = ?", packageType, packageID, date, timeLabel).
		Update("booked_count", booked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}
