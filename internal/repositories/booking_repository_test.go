package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"travelbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMarkCancelledIsOneWay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db}

	// already-cancelled row: the status guard matches nothing
	mock.ExpectExec("UPDATE bookings").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkCancelled(context.Background(), db, 7)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetForUpdateScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db}

	mock.ExpectQuery("(?s)FROM bookings.*FOR UPDATE").
		WithArgs(int64(7), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_ref", "user_id", "travel_option_id",
			"seat_count", "total_price", "status", "created_at",
		}))

	_, err = repo.GetForUpdate(context.Background(), db, 7, 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("foreign booking must look missing, got %v", err)
	}
}

func TestListByUserNewestFirstQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db}

	rows := sqlmock.NewRows([]string{
		"id", "booking_ref", "user_id", "travel_option_id", "seat_count",
		"total_price", "status", "created_at",
		"travel_code", "travel_type", "source", "destination",
		"departure_date", "departure_time", "price",
	}).AddRow(
		7, "BKDEADBEEF", 3, 1, 2, int64(1000000), "confirmed", time.Now(),
		"FL001", "flight", "Mumbai", "Delhi", "2026-09-01", "10:30:00", int64(500000),
	)

	mock.ExpectQuery("(?s)JOIN travel_options.*ORDER BY b.created_at DESC").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(out))
	}
	got := out[0]
	if got.BookingRef != "BKDEADBEEF" || got.Source != "Mumbai" || got.TotalPrice != 1000000 {
		t.Fatalf("row mapped wrong: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPassengerNamesKeepPositionOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db}

	mock.ExpectQuery("(?s)FROM booking_passengers.*ORDER BY position").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"passenger_name"}).
			AddRow("John Doe").
			AddRow("Jane Doe"))

	names, err := repo.PassengerNames(context.Background(), 7)
	if err != nil {
		t.Fatalf("PassengerNames returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "John Doe" || names[1] != "Jane Doe" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestInsertWritesImmutableSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("BK3F2A91CD", int64(3), int64(1), 2, int64(1000000), "confirmed").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Insert(context.Background(), db, models.Booking{
		BookingRef:     "BK3F2A91CD",
		UserID:         3,
		TravelOptionID: 1,
		SeatCount:      2,
		TotalPrice:     1000000,
		Status:         "confirmed",
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
