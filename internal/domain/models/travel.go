package models

import (
	"time"

	"travelbook/internal/domain"
)

// TravelOption is a bookable unit of transport with a fixed capacity.
// Price and TotalPrice amounts are stored in minor currency units.
type TravelOption struct {
	ID             int64             `json:"id"`
	TravelCode     string            `json:"travelCode"`
	TravelType     domain.TravelType `json:"travelType"`
	Source         string            `json:"source"`
	Destination    string            `json:"destination"`
	DepartureDate  string            `json:"departureDate"` // YYYY-MM-DD
	DepartureTime  string            `json:"departureTime"` // HH:MM:SS
	ArrivalDate    string            `json:"arrivalDate"`
	ArrivalTime    string            `json:"arrivalTime"`
	Price          int64             `json:"price"`
	TotalSeats     int               `json:"totalSeats"`
	AvailableSeats int               `json:"availableSeats"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// TravelFilter narrows the travel listing. Zero values mean "no filter".
type TravelFilter struct {
	TravelType    string
	Source        string
	Destination   string
	DepartureDate string
	IncludeFull   bool
}
