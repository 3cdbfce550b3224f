package inventory

// Slot is the wire shape the inventory service reports per departure.
// Capacity data is owned by the service; consumers read it and never
// write back.
type Slot struct {
	Time        string `json:"time"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"bookedCount"`
}
