package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a PDF e-ticket for a confirmed booking.
type TicketService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
	Loader      func(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error)
}

func (s TicketService) load(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID, bookingID)
	}
	svc := BookingService{BookingRepo: s.BookingRepo, DB: s.DB, RequestID: s.RequestID}
	return svc.GetForUser(ctx, userID, bookingID)
}

func (s TicketService) GenerateETicket(ctx context.Context, userID, bookingID int64) ([]byte, string, error) {
	d, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	if d.Status != domain.BookingConfirmed {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "only confirmed bookings have tickets"}
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", "ref="+d.BookingRef)
	return buildETicketPDF(d)
}

func buildETicketPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVELBOOK E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref   : %s", d.BookingRef),
		fmt.Sprintf("Travel        : %s (%s)", safe(d.TravelCode, "-"), safe(string(d.TravelType), "-")),
		fmt.Sprintf("Route         : %s -> %s", safe(d.Source, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure     : %s %s", safe(d.DepartureDate, "-"), safe(timeHM(d.DepartureTime), "-")),
		fmt.Sprintf("Seats         : %d", d.SeatCount),
		fmt.Sprintf("Total Price   : %s", utils.FormatMoney(d.TotalPrice)),
		fmt.Sprintf("Booked At     : %s", d.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for i, name := range d.PassengerNames {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s", i+1, name))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket at departure. Each passenger occupies one reserved seat.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	return buf.Bytes(), fmt.Sprintf("eticket-%s.pdf", d.BookingRef), nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func timeHM(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}
