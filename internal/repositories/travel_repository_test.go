package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func travelTestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "travel_code", "travel_type", "source", "destination",
		"departure_date", "departure_time", "arrival_date", "arrival_time",
		"price", "total_seats", "available_seats", "created_at",
	}).AddRow(
		1, "FL001", "flight", "Mumbai", "Delhi",
		"2026-09-01", "10:30:00", "2026-09-01", "12:30:00",
		int64(500000), 100, 98, time.Now(),
	)
}

func TestSearchExcludesFullyBookedByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := TravelRepository{DB: db}

	mock.ExpectQuery("SELECT COUNT(.+) FROM travel_options WHERE 1=1 AND available_seats > 0").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("(?s)available_seats > 0.*ORDER BY departure_date, departure_time").
		WithArgs(10, 0).
		WillReturnRows(travelTestRows())

	out, total, err := repo.Search(context.Background(), models.TravelFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if total != 1 || len(out) != 1 {
		t.Fatalf("got total=%d len=%d", total, len(out))
	}
	if out[0].TravelCode != "FL001" {
		t.Fatalf("unexpected row: %+v", out[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchAppliesAllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := TravelRepository{DB: db}

	filter := models.TravelFilter{
		TravelType:    "flight",
		Source:        "Mum",
		Destination:   "Del",
		DepartureDate: "2026-09-01",
	}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("flight", "%mum%", "%del%", "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("(?s)travel_type = \\?.*LOWER\\(source\\) LIKE \\?.*LOWER\\(destination\\) LIKE \\?.*departure_date = \\?").
		WithArgs("flight", "%mum%", "%del%", "2026-09-01", 10, 0).
		WillReturnRows(travelTestRows())

	out, _, err := repo.Search(context.Background(), filter, 1, 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTakeSeatsRefusesOverdraw(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := TravelRepository{DB: db}

	mock.ExpectExec("available_seats = available_seats -").
		WithArgs(5, int64(1), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.TakeSeats(context.Background(), db, 1, 5)
	if !errors.Is(err, ErrSeatConstraint) {
		t.Fatalf("expected ErrSeatConstraint, got %v", err)
	}
}

func TestReturnSeatsRefusesExceedingCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := TravelRepository{DB: db}

	mock.ExpectExec(`available_seats = available_seats \+`).
		WithArgs(5, int64(1), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ReturnSeats(context.Background(), db, 1, 5)
	if !errors.Is(err, ErrSeatConstraint) {
		t.Fatalf("expected ErrSeatConstraint, got %v", err)
	}
}

func TestCreateStartsWithFullAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := TravelRepository{DB: db}

	mock.ExpectExec("INSERT INTO travel_options").
		WithArgs("TR900", "train", "Pune", "Goa", "2026-10-01", "08:00:00",
			"2026-10-01", "14:00:00", int64(120000), 60, 60).
		WillReturnResult(sqlmock.NewResult(4, 1))

	created, err := repo.Create(context.Background(), models.TravelOption{
		TravelCode:    "TR900",
		TravelType:    "train",
		Source:        "Pune",
		Destination:   "Goa",
		DepartureDate: "2026-10-01",
		DepartureTime: "08:00:00",
		ArrivalDate:   "2026-10-01",
		ArrivalTime:   "14:00:00",
		Price:         120000,
		TotalSeats:    60,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 4 || created.AvailableSeats != 60 {
		t.Fatalf("unexpected result: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
