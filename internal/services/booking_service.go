package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

// bookingRefAttempts bounds regeneration of the random booking reference
// when it collides with an existing one.
const bookingRefAttempts = 5

// BookingService implements the reservation and cancellation flows. Every
// mutation of available_seats happens inside one transaction together with
// the corresponding booking write, behind a SELECT ... FOR UPDATE row lock.
type BookingService struct {
	TravelRepo  repositories.TravelRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) travels() repositories.TravelRepository {
	if s.TravelRepo.DB != nil {
		return s.TravelRepo
	}
	return repositories.TravelRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Reserve books seatCount seats on a travel option for userID. It validates
// input, locks the travel row, re-checks availability, writes the booking
// with a fresh reference and passenger list, and decrements available_seats.
// On any failure the transaction rolls back whole.
func (s BookingService) Reserve(ctx context.Context, userID, travelOptionID int64, seatCount int, passengerNames []string) (models.Booking, error) {
	if seatCount < 1 {
		return models.Booking{}, domain.ValidationError{Field: "seat_count", Msg: "must be at least 1"}
	}

	names := make([]string, 0, len(passengerNames))
	for _, n := range passengerNames {
		n = utils.NormalizeSpace(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	if len(names) != seatCount {
		return models.Booking{}, domain.ValidationError{
			Field: "passenger_names",
			Msg:   fmt.Sprintf("expected %d passenger names, got %d", seatCount, len(names)),
		}
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	travel, err := s.travels().GetForUpdate(ctx, tx, travelOptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "travel option", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if travel.AvailableSeats < seatCount {
		return models.Booking{}, domain.InsufficientSeatsError{
			Available: travel.AvailableSeats,
			Requested: seatCount,
		}
	}

	booking := models.Booking{
		UserID:         userID,
		TravelOptionID: travel.ID,
		SeatCount:      seatCount,
		TotalPrice:     travel.Price * int64(seatCount),
		Status:         domain.BookingConfirmed,
		PassengerNames: names,
	}

	for attempt := 0; ; attempt++ {
		booking.BookingRef = utils.NewBookingRef()
		booking.ID, err = s.bookings().Insert(ctx, tx, booking)
		if err == nil {
			break
		}
		if repositories.IsDuplicateEntry(err) && attempt < bookingRefAttempts-1 {
			continue
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := s.bookings().InsertPassengers(ctx, tx, booking.ID, names); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := s.travels().TakeSeats(ctx, tx, travel.ID, seatCount); err != nil {
		if errors.Is(err, repositories.ErrSeatConstraint) {
			return models.Booking{}, domain.InsufficientSeatsError{
				Available: travel.AvailableSeats,
				Requested: seatCount,
			}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "reserve",
		fmt.Sprintf("ref=%s travel_option_id=%d seats=%d", booking.BookingRef, travel.ID, seatCount))
	return booking, nil
}

// Cancel moves a confirmed booking to cancelled and restores its seats.
// A booking that is missing or owned by another user yields NotFoundError,
// indistinguishable on purpose. Cancelling an already-cancelled booking is
// a no-op returning (false, nil).
func (s BookingService) Cancel(ctx context.Context, userID, bookingID int64) (bool, error) {
	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	booking, err := s.bookings().GetForUpdate(ctx, tx, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return false, domain.InternalError{Err: err}
	}

	if booking.Status != domain.BookingConfirmed {
		return false, nil
	}

	if err := s.bookings().MarkCancelled(ctx, tx, booking.ID); err != nil {
		return false, domain.InternalError{Err: err}
	}

	if err := s.travels().ReturnSeats(ctx, tx, booking.TravelOptionID, booking.SeatCount); err != nil {
		if errors.Is(err, repositories.ErrSeatConstraint) {
			// restoring these seats would exceed total_seats; the inventory
			// is already corrupt and the transaction must not commit
			return false, domain.InternalError{
				Msg: "seat inventory inconsistent",
				Err: err,
			}
		}
		return false, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return false, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("ref=%s seats_returned=%d", booking.BookingRef, booking.SeatCount))
	return true, nil
}

// ListForUser returns the caller's bookings, newest first.
func (s BookingService) ListForUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	out, err := s.bookings().ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// GetForUser loads one booking with travel details, owner-scoped.
func (s BookingService) GetForUser(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error) {
	d, err := s.bookings().GetDetailForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingDetail{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.BookingDetail{}, domain.InternalError{Err: err}
	}
	return d, nil
}

// ParsePassengerNames turns the newline-delimited form input into a clean
// name list.
func ParsePassengerNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return utils.SplitPassengerNames(raw)
}
