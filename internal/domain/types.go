package domain

// TravelType enumerates the bookable transport kinds.
type TravelType string

const (
	TravelFlight TravelType = "flight"
	TravelTrain  TravelType = "train"
	TravelBus    TravelType = "bus"
)

func (t TravelType) Valid() bool {
	switch t {
	case TravelFlight, TravelTrain, TravelBus:
		return true
	}
	return false
}

// BookingStatus is confirmed at creation and may only move to cancelled.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
