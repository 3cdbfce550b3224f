package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmeniyu/Oastel-sub001/internal/database"
	"github.com/callmeniyu/Oastel-sub001/internal/domain"
)

const packageID = "64a1b2c3d4e5f60718293a4b"

func setupRepo(t *testing.T) *TimeSlotRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.TimeSlot{}))

	return NewTimeSlotRepository(db)
}

func TestTimeSlotRepository_SlotsFor(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, slot := range []domain.TimeSlot{
		{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-12", Time: "14:00", Capacity: 10, BookedCount: 2},
		{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-12", Time: "08:00", Capacity: 8, BookedCount: 8},
		{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-13", Time: "08:00", Capacity: 8, BookedCount: 0},
	} {
		s := slot
		require.NoError(t, repo.Create(ctx, &s))
	}

	slots, err := repo.SlotsFor(ctx, domain.PackageTour, packageID, "2026-03-12")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "14:00", slots[1].Time)
	assert.Equal(t, 8, slots[0].BookedCount)
}

func TestTimeSlotRepository_SlotsFor_NoRows(t *testing.T) {
	repo := setupRepo(t)

	slots, err := repo.SlotsFor(context.Background(), domain.PackageTransfer, packageID, "2026-03-12")

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestTimeSlotRepository_Create_Duplicate(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	slot := domain.TimeSlot{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-12", Time: "08:00", Capacity: 8}
	require.NoError(t, repo.Create(ctx, &slot))

	dup := domain.TimeSlot{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-12", Time: "08:00", Capacity: 12}
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicateSlot)
}

func TestTimeSlotRepository_SetBookedCount(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	slot := domain.TimeSlot{PackageType: domain.PackageTour, PackageID: packageID, Date: "2026-03-12", Time: "08:00", Capacity: 8}
	require.NoError(t, repo.Create(ctx, &slot))

	require.NoError(t, repo.SetBookedCount(ctx, domain.PackageTour, packageID, "2026-03-12", "08:00", 5))

	slots, err := repo.SlotsFor(ctx, domain.PackageTour, packageID, "2026-03-12")
	require.NoError(t, err)
	assert.Equal(t, 5, slots[0].BookedCount)

	assert.ErrorIs(t,
		repo.SetBookedCount(ctx, domain.PackageTour, packageID, "2026-03-12", "23:00", 1),
		domain.ErrSlotNotFound,
	)
}
