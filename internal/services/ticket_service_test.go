package services

import (
	"context"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

func ticketLoader(status domain.BookingStatus) func(context.Context, int64, int64) (models.BookingDetail, error) {
	return func(_ context.Context, userID, bookingID int64) (models.BookingDetail, error) {
		return models.BookingDetail{
			Booking: models.Booking{
				ID:             bookingID,
				BookingRef:     "BK3F2A91CD",
				UserID:         userID,
				TravelOptionID: 1,
				SeatCount:      2,
				TotalPrice:     1000000,
				Status:         status,
				PassengerNames: []string{"John Doe", "Jane Doe"},
				CreatedAt:      time.Now(),
			},
			TravelCode:    "FL001",
			TravelType:    domain.TravelFlight,
			Source:        "Mumbai",
			Destination:   "Delhi",
			DepartureDate: "2026-09-01",
			DepartureTime: "10:30:00",
			PricePerSeat:  500000,
		}, nil
	}
}

func TestGenerateETicket(t *testing.T) {
	svc := TicketService{Loader: ticketLoader(domain.BookingConfirmed)}

	pdf, filename, err := svc.GenerateETicket(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("GenerateETicket returned empty data")
	}
	if filename != "eticket-BK3F2A91CD.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateETicketRejectsCancelledBooking(t *testing.T) {
	svc := TicketService{Loader: ticketLoader(domain.BookingCancelled)}

	_, _, err := svc.GenerateETicket(context.Background(), 3, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
