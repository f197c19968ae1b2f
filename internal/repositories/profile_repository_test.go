package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func profileRows(dob any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "phone", "address", "date_of_birth"}).
		AddRow(1, 3, "555-0100", "42 Main St", dob)
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := ProfileRepository{DB: db}

	mock.ExpectQuery("FROM user_profiles").
		WithArgs(int64(3)).
		WillReturnRows(profileRows("1990-05-20"))

	p, err := repo.GetOrCreate(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if p.Phone != "555-0100" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.DateOfBirth != "1990-05-20" {
		t.Fatalf("unexpected date of birth: %q", p.DateOfBirth)
	}
}

func TestGetOrCreateInsertsOnFirstAccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := ProfileRepository{DB: db}

	mock.ExpectQuery("FROM user_profiles").
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO user_profiles").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM user_profiles").
		WithArgs(int64(3)).
		WillReturnRows(profileRows(nil))

	p, err := repo.GetOrCreate(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if p.DateOfBirth != "" {
		t.Fatalf("expected empty date of birth, got %q", p.DateOfBirth)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
