package models

import (
	"time"

	"travelbook/internal/domain"
)

// Booking is a reservation against a travel option. BookingRef and
// TotalPrice are set once at creation and never recomputed.
type Booking struct {
	ID             int64                `json:"id"`
	BookingRef     string               `json:"bookingRef"`
	UserID         int64                `json:"userId"`
	TravelOptionID int64                `json:"travelOptionId"`
	SeatCount      int                  `json:"seatCount"`
	TotalPrice     int64                `json:"totalPrice"`
	Status         domain.BookingStatus `json:"status"`
	PassengerNames []string             `json:"passengerNames"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// BookingDetail joins booking rows with their travel option for listings
// and ticket rendering.
type BookingDetail struct {
	Booking
	TravelCode    string            `json:"travelCode"`
	TravelType    domain.TravelType `json:"travelType"`
	Source        string            `json:"source"`
	Destination   string            `json:"destination"`
	DepartureDate string            `json:"departureDate"`
	DepartureTime string            `json:"departureTime"`
	PricePerSeat  int64             `json:"pricePerSeat"`
}
