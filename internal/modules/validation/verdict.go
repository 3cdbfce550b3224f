package validation

// Verdict is the structured outcome of checking one booking request.
// Exactly one state holds: IsValid, or one failure reason (IsExpired,
// IsFull, or generic invalid when both flags are false). Callers render
// UI state from this tuple alone.
type Verdict struct {
	IsValid        bool   `json:"isValid"`
	IsExpired      bool   `json:"isExpired"`
	IsFull         bool   `json:"isFull"`
	Message        string `json:"message"`
	AvailableSlots *int   `json:"availableSlots,omitempty"`
	TotalCapacity  *int   `json:"totalCapacity,omitempty"`
}

const (
	MsgInvalidInput     = "Invalid input parameters"
	MsgInvalidPackageID = "Invalid package ID format"
	MsgDateExpired      = "Date has expired"
	MsgSlotNotFound     = "Time slot not found"
	MsgSlotFull         = "Time slot is fully booked"
	MsgSlotAvailable    = "Slot available"
	MsgMissingInfo      = "Missing booking information"
	MsgBookingClosed    = "Booking window has closed"
)

func invalidVerdict(message string) Verdict {
	return Verdict{Message: message}
}

func intPtr(v int) *int {
	return &v
}
