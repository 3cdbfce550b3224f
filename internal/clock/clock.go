package clock

import (
	"context"
	"time"
)

// Source resolves the authoritative current time used for expiry
// decisions. It is injected into the validation service so tests can
// pin the clock; implementations must always return a usable time and
// never an error (degraded sources fall back to the local wall clock).
type Source interface {
	Now(ctx context.Context) time.Time
}

// businessZone is the single timezone all expiry decisions run in.
// Client device clocks are never consulted.
var businessZone = loadBusinessZone()

func loadBusinessZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		return time.FixedZone("MYT", 8*60*60)
	}
	return loc
}

// BusinessZone returns the fixed business timezone (Asia/Kuala_Lumpur).
func BusinessZone() *time.Location {
	return businessZone
}

// System reads the local wall clock in the business timezone. Used
// directly when no remote clock is configured, and as the fallback of
// HTTPSource.
type System struct{}

func (System) Now(_ context.Context) time.Time {
	return time.Now().In(businessZone)
}

// Fixed always reports the same instant. Test helper.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now(_ context.Context) time.Time {
	return f.T.In(businessZone)
}
