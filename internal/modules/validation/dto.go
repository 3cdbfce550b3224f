package validation

import "github.com/callmeniyu/Oastel-sub001/internal/domain"

// CartItem is the loose wire shape cart producers send. Older clients
// put the slot under selectedDate/selectedTime and split the party into
// adults and children; normalizeItem folds both shapes into one
// canonical item before validation.
type CartItem struct {
	ID           string             `json:"id"`
	PackageType  domain.PackageType `json:"packageType"`
	PackageID    string             `json:"packageId"`
	Date         string             `json:"date"`
	SelectedDate string             `json:"selectedDate"`
	Time         string             `json:"time"`
	SelectedTime string             `json:"selectedTime"`
	Guests       int                `json:"guests"`
	Adults       int                `json:"adults"`
	Children     int                `json:"children"`
}

type ValidateSlotRequest struct {
	PackageType string `json:"packageType"`
	PackageID   string `json:"packageId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Guests      int    `json:"guests"`
}

type ValidateCartRequest struct {
	Items []CartItem `json:"items"`
}

type TimeSlotsQuery struct {
	PackageType string `form:"packageType" validate:"required,oneof=tour transfer"`
	PackageID   string `form:"packageId" validate:"required,hexadecimal,len=24"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
}
