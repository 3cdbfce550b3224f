package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
)

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		name     string
		in       CartItem
		want     normalizedItem
		complete bool
	}{
		{
			name: "modern shape",
			in:   CartItem{ID: "1", PackageType: domain.PackageTour, PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 2},
			want: normalizedItem{ID: "1", PackageType: "tour", PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 2},
			complete: true,
		},
		{
			name: "legacy selectedDate/selectedTime",
			in:   CartItem{ID: "2", PackageType: domain.PackageTransfer, PackageID: validPackageID, SelectedDate: "2026-03-12", SelectedTime: "13:30", Guests: 1},
			want: normalizedItem{ID: "2", PackageType: "transfer", PackageID: validPackageID, Date: "2026-03-12", Time: "13:30", Guests: 1},
			complete: true,
		},
		{
			name: "guests derived from adults+children",
			in:   CartItem{ID: "3", PackageType: domain.PackageTour, PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Adults: 2, Children: 3},
			want: normalizedItem{ID: "3", PackageType: "tour", PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 5},
			complete: true,
		},
		{
			name: "explicit guests wins over adults+children",
			in:   CartItem{ID: "4", PackageType: domain.PackageTour, PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 2, Adults: 4, Children: 4},
			want: normalizedItem{ID: "4", PackageType: "tour", PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 2},
			complete: true,
		},
		{
			name: "modern keys win over legacy keys",
			in:   CartItem{ID: "5", PackageType: domain.PackageTour, PackageID: validPackageID, Date: "2026-03-12", SelectedDate: "2026-03-13", Time: "09:00", SelectedTime: "10:00", Guests: 1},
			want: normalizedItem{ID: "5", PackageType: "tour", PackageID: validPackageID, Date: "2026-03-12", Time: "09:00", Guests: 1},
			complete: true,
		},
		{
			name:     "missing package id",
			in:       CartItem{ID: "6", PackageType: domain.PackageTour, Date: "2026-03-12", Time: "09:00", Guests: 1},
			want:     normalizedItem{ID: "6", PackageType: "tour", Date: "2026-03-12", Time: "09:00", Guests: 1},
			complete: false,
		},
		{
			name:     "missing date under both keys",
			in:       CartItem{ID: "7", PackageType: domain.PackageTour, PackageID: validPackageID, Time: "09:00", Guests: 1},
			want:     normalizedItem{ID: "7", PackageType: "tour", PackageID: validPackageID, Time: "09:00", Guests: 1},
			complete: false,
		},
		{
			name:     "missing time under both keys",
			in:       CartItem{ID: "8", PackageType: domain.PackageTour, PackageID: validPackageID, Date: "2026-03-12", Guests: 1},
			want:     normalizedItem{ID: "8", PackageType: "tour", PackageID: validPackageID, Date: "2026-03-12", Guests: 1},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeItem(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.complete, got.complete())
		})
	}
}
