package validation

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/callmeniyu/Oastel-sub001/internal/clock"
	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/inventory"
)

var (
	// packageIDToken is the Mongo-style object id carried by upstream
	// package records.
	packageIDToken = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	canonicalDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type Service struct {
	inv InventoryQuerier
	clk ClockSource

	// bookingCutoff is the minimum lead time before departure enforced
	// on the booking path only.
	bookingCutoff time.Duration
}

func NewService(inv InventoryQuerier, clk ClockSource, bookingCutoff time.Duration) *Service {
	return &Service{inv: inv, clk: clk, bookingCutoff: bookingCutoff}
}

// ValidateSlot checks one (package, date, time, guests) request against
// live inventory. Every failure, including transport errors, comes back
// as a Verdict; the method never returns an error.
//
// There is deliberately no lead-time cut-off here: cart validation
// answers "does capacity exist", and items may sit in a cart well before
// the final confirmation window. The stricter check lives in
// ValidateForBooking.
func (s *Service) ValidateSlot(ctx context.Context, packageType domain.PackageType, packageID, date, timeLabel string, guests int) Verdict {
	if packageType == "" || packageID == "" || date == "" || timeLabel == "" || guests < 1 {
		return invalidVerdict(MsgInvalidInput)
	}
	if !packageIDToken.MatchString(packageID) {
		return invalidVerdict(MsgInvalidPackageID)
	}

	queryDate, day, err := resolveDate(date)
	if err != nil {
		return invalidVerdict(MsgInvalidInput)
	}

	if day.Before(startOfDay(s.clk.Now(ctx))) {
		return Verdict{IsExpired: true, Message: MsgDateExpired}
	}

	slots, err := s.inv.SlotsFor(ctx, packageType, packageID, queryDate)
	if err != nil {
		return invalidVerdict("Validation failed: " + err.Error())
	}

	var slot *inventory.Slot
	for i := range slots {
		if slots[i].Time == timeLabel {
			slot = &slots[i]
			break
		}
	}
	if slot == nil {
		return invalidVerdict(MsgSlotNotFound)
	}

	available := slot.Capacity - slot.BookedCount
	switch {
	case available <= 0:
		return Verdict{
			IsFull:         true,
			Message:        MsgSlotFull,
			AvailableSlots: intPtr(0),
			TotalCapacity:  intPtr(slot.Capacity),
		}
	case guests > available:
		return Verdict{
			IsFull:         true,
			Message:        fmt.Sprintf("Only %d spots available", available),
			AvailableSlots: intPtr(available),
			TotalCapacity:  intPtr(slot.Capacity),
		}
	default:
		return Verdict{
			IsValid:        true,
			Message:        MsgSlotAvailable,
			AvailableSlots: intPtr(available),
			TotalCapacity:  intPtr(slot.Capacity),
		}
	}
}

// ValidateForBooking is the commit-path check: capacity plus the
// departure cut-off. It exists so the cart path and the purchase path
// stay asymmetric on purpose.
func (s *Service) ValidateForBooking(ctx context.Context, packageType domain.PackageType, packageID, date, timeLabel string, guests int) Verdict {
	v := s.ValidateSlot(ctx, packageType, packageID, date, timeLabel, guests)
	if !v.IsValid || s.bookingCutoff <= 0 {
		return v
	}

	_, day, err := resolveDate(date)
	if err != nil {
		return v
	}
	hhmm, err := time.Parse("15:04", timeLabel)
	if err != nil {
		// opaque label, no departure instant to compare against
		return v
	}

	departure := day.Add(time.Duration(hhmm.Hour())*time.Hour + time.Duration(hhmm.Minute())*time.Minute)
	if s.clk.Now(ctx).Add(s.bookingCutoff).After(departure) {
		return invalidVerdict(MsgBookingClosed)
	}
	return v
}

// SlotAvailability is one row of the listing the cart UI renders.
type SlotAvailability struct {
	Time        string `json:"time"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"bookedCount"`
	Available   int    `json:"available"`
}

// ListSlots is the inventory pass-through with availability computed
// per slot, clamped at zero for display.
func (s *Service) ListSlots(ctx context.Context, packageType domain.PackageType, packageID, date string) ([]SlotAvailability, error) {
	slots, err := s.inv.SlotsFor(ctx, packageType, packageID, date)
	if err != nil {
		return nil, err
	}

	out := make([]SlotAvailability, 0, len(slots))
	for _, sl := range slots {
		available := sl.Capacity - sl.BookedCount
		if available < 0 {
			available = 0
		}
		out = append(out, SlotAvailability{
			Time:        sl.Time,
			Capacity:    sl.Capacity,
			BookedCount: sl.BookedCount,
			Available:   available,
		})
	}
	return out, nil
}

// Now exposes the authoritative clock readout.
func (s *Service) Now(ctx context.Context) time.Time {
	return s.clk.Now(ctx)
}

// resolveDate yields the canonical YYYY-MM-DD query string and the
// local midnight of that day. A date already in canonical form is used
// verbatim so it never shifts through a UTC round trip.
func resolveDate(date string) (string, time.Time, error) {
	zone := clock.BusinessZone()

	if canonicalDate.MatchString(date) {
		day, err := time.ParseInLocation("2006-01-02", date, zone)
		if err != nil {
			return "", time.Time{}, err
		}
		return date, day, nil
	}

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		day := startOfDay(t.In(zone))
		return day.Format("2006-01-02"), day, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, date, zone); err == nil {
			day := startOfDay(t)
			return day.Format("2006-01-02"), day, nil
		}
	}
	return "", time.Time{}, fmt.Errorf("unrecognized date %q", date)
}

func startOfDay(t time.Time) time.Time {
	t = t.In(clock.BusinessZone())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, clock.BusinessZone())
}
