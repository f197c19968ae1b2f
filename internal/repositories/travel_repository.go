package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
)

// ErrSeatConstraint signals a seat-counter update that would break
// 0 <= available_seats <= total_seats.
var ErrSeatConstraint = errors.New("seat counter constraint violated")

type TravelRepository struct {
	DB *sql.DB
}

func (r TravelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DATE/TIME columns are formatted in SQL: the DSN sets parseTime=true for
// created_at, which would otherwise turn them into time.Time as well.
const travelColumns = `id, travel_code, travel_type, source, destination,
		DATE_FORMAT(departure_date, '%Y-%m-%d'), TIME_FORMAT(departure_time, '%H:%i:%s'),
		DATE_FORMAT(arrival_date, '%Y-%m-%d'), TIME_FORMAT(arrival_time, '%H:%i:%s'),
		price, total_seats, available_seats, created_at`

func scanTravel(row interface{ Scan(...any) error }) (models.TravelOption, error) {
	var t models.TravelOption
	err := row.Scan(
		&t.ID,
		&t.TravelCode,
		&t.TravelType,
		&t.Source,
		&t.Destination,
		&t.DepartureDate,
		&t.DepartureTime,
		&t.ArrivalDate,
		&t.ArrivalTime,
		&t.Price,
		&t.TotalSeats,
		&t.AvailableSeats,
		&t.CreatedAt,
	)
	return t, err
}

// Create inserts a travel option. available_seats starts equal to
// total_seats; reservation and cancellation are the only writers afterwards.
func (r TravelRepository) Create(ctx context.Context, t models.TravelOption) (models.TravelOption, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO travel_options
		(travel_code, travel_type, source, destination, departure_date, departure_time,
		 arrival_date, arrival_time, price, total_seats, available_seats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		t.TravelCode,
		t.TravelType,
		t.Source,
		t.Destination,
		t.DepartureDate,
		t.DepartureTime,
		t.ArrivalDate,
		t.ArrivalTime,
		t.Price,
		t.TotalSeats,
		t.TotalSeats,
	)
	if err != nil {
		return models.TravelOption{}, err
	}
	t.ID, _ = res.LastInsertId()
	t.AvailableSeats = t.TotalSeats
	return t, nil
}

func (r TravelRepository) GetByID(ctx context.Context, id int64) (models.TravelOption, error) {
	row := r.db().QueryRowContext(ctx, `
		SELECT `+travelColumns+`
		FROM travel_options
		WHERE id = ?
		LIMIT 1
	`, id)
	return scanTravel(row)
}

// GetForUpdate locks the travel row for the duration of the surrounding
// transaction. Every availability check and seat mutation goes through this
// lock so concurrent reservations serialize per row.
func (r TravelRepository) GetForUpdate(ctx context.Context, q DBTX, id int64) (models.TravelOption, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+travelColumns+`
		FROM travel_options
		WHERE id = ?
		FOR UPDATE
	`, id)
	return scanTravel(row)
}

// TakeSeats decrements available_seats; the WHERE clause re-asserts
// availability so a lost update can never drive the counter negative.
func (r TravelRepository) TakeSeats(ctx context.Context, q DBTX, id int64, n int) error {
	res, err := q.ExecContext(ctx, `
		UPDATE travel_options
		SET available_seats = available_seats - ?
		WHERE id = ? AND available_seats >= ?
	`, n, id, n)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSeatConstraint
	}
	return nil
}

// ReturnSeats restores seats after a cancellation. The guard keeps
// available_seats from ever exceeding total_seats; tripping it means the
// inventory is already inconsistent and the transaction must abort.
func (r TravelRepository) ReturnSeats(ctx context.Context, q DBTX, id int64, n int) error {
	res, err := q.ExecContext(ctx, `
		UPDATE travel_options
		SET available_seats = available_seats + ?
		WHERE id = ? AND available_seats + ? <= total_seats
	`, n, id, n)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSeatConstraint
	}
	return nil
}

// Search filters travel options and returns a page plus the total match
// count. Fully booked options are excluded unless IncludeFull is set.
func (r TravelRepository) Search(ctx context.Context, f models.TravelFilter, page, pageSize int) ([]models.TravelOption, int, error) {
	where := []string{"1=1"}
	args := []any{}

	if !f.IncludeFull {
		where = append(where, "available_seats > 0")
	}
	if f.TravelType != "" {
		where = append(where, "travel_type = ?")
		args = append(args, f.TravelType)
	}
	if s := strings.TrimSpace(f.Source); s != "" {
		where = append(where, "LOWER(source) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Destination); s != "" {
		where = append(where, "LOWER(destination) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if f.DepartureDate != "" {
		where = append(where, "departure_date = ?")
		args = append(args, f.DepartureDate)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM travel_options WHERE `+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db().QueryContext(ctx, `
		SELECT `+travelColumns+`
		FROM travel_options
		WHERE `+cond+`
		ORDER BY departure_date, departure_time, id
		LIMIT ? OFFSET ?
	`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.TravelOption{}
	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}
