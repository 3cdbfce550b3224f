package validation

// normalizedItem is the single canonical shape validation runs on.
type normalizedItem struct {
	ID          string
	PackageType string
	PackageID   string
	Date        string
	Time        string
	Guests      int
}

// normalizeItem maps any accepted cart item shape to the canonical one.
// Field precedence, in order:
//
//	date   <- date, selectedDate
//	time   <- time, selectedTime
//	guests <- guests, adults+children
func normalizeItem(it CartItem) normalizedItem {
	n := normalizedItem{
		ID:          it.ID,
		PackageType: string(it.PackageType),
		PackageID:   it.PackageID,
		Date:        it.Date,
		Time:        it.Time,
		Guests:      it.Guests,
	}
	if n.Date == "" {
		n.Date = it.SelectedDate
	}
	if n.Time == "" {
		n.Time = it.SelectedTime
	}
	if n.Guests == 0 {
		n.Guests = it.Adults + it.Children
	}
	return n
}

// complete reports whether the item carries everything needed for an
// inventory lookup. Incomplete items never reach the network.
func (n normalizedItem) complete() bool {
	return n.PackageID != "" && n.Date != "" && n.Time != ""
}
