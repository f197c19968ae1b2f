package repositories

import (
	"context"
	"database/sql"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert writes a booking row. A duplicate booking_ref surfaces as a
// MySQL 1062 error; the caller regenerates the reference and retries.
func (r BookingRepository) Insert(ctx context.Context, q DBTX, b models.Booking) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO bookings
		(booking_ref, user_id, travel_option_id, seat_count, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`,
		b.BookingRef,
		b.UserID,
		b.TravelOptionID,
		b.SeatCount,
		b.TotalPrice,
		b.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertPassengers(ctx context.Context, q DBTX, bookingID int64, names []string) error {
	for i, name := range names {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO booking_passengers (booking_id, position, passenger_name, created_at)
			VALUES (?, ?, ?, NOW())
		`, bookingID, i+1, name); err != nil {
			return err
		}
	}
	return nil
}

// GetForUpdate locks the booking row scoped to its owner. A missing row and
// a row owned by someone else are indistinguishable (sql.ErrNoRows).
func (r BookingRepository) GetForUpdate(ctx context.Context, q DBTX, id, userID int64) (models.Booking, error) {
	var b models.Booking
	err := q.QueryRowContext(ctx, `
		SELECT id, booking_ref, user_id, travel_option_id, seat_count, total_price, status, created_at
		FROM bookings
		WHERE id = ? AND user_id = ?
		FOR UPDATE
	`, id, userID).Scan(
		&b.ID,
		&b.BookingRef,
		&b.UserID,
		&b.TravelOptionID,
		&b.SeatCount,
		&b.TotalPrice,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

// MarkCancelled flips a confirmed booking to cancelled. The status guard in
// the WHERE clause makes the transition one-way.
func (r BookingRepository) MarkCancelled(ctx context.Context, q DBTX, id int64) error {
	res, err := q.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = ? AND status = 'confirmed'
	`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const bookingDetailColumns = `
		b.id, b.booking_ref, b.user_id, b.travel_option_id, b.seat_count,
		b.total_price, b.status, b.created_at,
		t.travel_code, t.travel_type, t.source, t.destination,
		DATE_FORMAT(t.departure_date, '%Y-%m-%d'), TIME_FORMAT(t.departure_time, '%H:%i:%s'), t.price`

func scanBookingDetail(row interface{ Scan(...any) error }) (models.BookingDetail, error) {
	var d models.BookingDetail
	err := row.Scan(
		&d.ID,
		&d.BookingRef,
		&d.UserID,
		&d.TravelOptionID,
		&d.SeatCount,
		&d.TotalPrice,
		&d.Status,
		&d.CreatedAt,
		&d.TravelCode,
		&d.TravelType,
		&d.Source,
		&d.Destination,
		&d.DepartureDate,
		&d.DepartureTime,
		&d.PricePerSeat,
	)
	return d, err
}

// GetDetailForUser loads one booking with its travel option, owner-scoped.
func (r BookingRepository) GetDetailForUser(ctx context.Context, id, userID int64) (models.BookingDetail, error) {
	row := r.db().QueryRowContext(ctx, `
		SELECT `+bookingDetailColumns+`
		FROM bookings b
		JOIN travel_options t ON t.id = b.travel_option_id
		WHERE b.id = ? AND b.user_id = ?
		LIMIT 1
	`, id, userID)
	d, err := scanBookingDetail(row)
	if err != nil {
		return models.BookingDetail{}, err
	}
	names, err := r.PassengerNames(ctx, d.ID)
	if err != nil {
		return models.BookingDetail{}, err
	}
	d.PassengerNames = names
	return d, nil
}

// ListByUser returns the caller's bookings, newest first.
func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+bookingDetailColumns+`
		FROM bookings b
		JOIN travel_options t ON t.id = b.travel_option_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC, b.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r BookingRepository) PassengerNames(ctx context.Context, bookingID int64) ([]string, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT passenger_name
		FROM booking_passengers
		WHERE booking_id = ?
		ORDER BY position
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
