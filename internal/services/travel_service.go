package services

import (
	"context"
	"database/sql"
	"errors"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

type TravelService struct {
	TravelRepo repositories.TravelRepository
	DB         *sql.DB
	RequestID  string
}

func (s TravelService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TravelService) travels() repositories.TravelRepository {
	if s.TravelRepo.DB != nil {
		return s.TravelRepo
	}
	return repositories.TravelRepository{DB: s.db()}
}

// Search lists travel options matching the filter, fully booked ones
// excluded unless the filter says otherwise.
func (s TravelService) Search(ctx context.Context, f models.TravelFilter, page, pageSize int) ([]models.TravelOption, domain.Pagination, error) {
	if f.TravelType != "" && !domain.TravelType(f.TravelType).Valid() {
		return nil, domain.Pagination{}, domain.ValidationError{Field: "type", Msg: "must be flight, train or bus"}
	}
	if f.DepartureDate != "" {
		if _, err := utils.ParseDate(f.DepartureDate); err != nil {
			return nil, domain.Pagination{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	out, total, err := s.travels().Search(ctx, f, page, pageSize)
	if err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Err: err}
	}
	return out, domain.Pagination{Page: page, PageSize: pageSize, Total: total}, nil
}

func (s TravelService) Get(ctx context.Context, id int64) (models.TravelOption, error) {
	t, err := s.travels().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TravelOption{}, domain.NotFoundError{Resource: "travel option", Err: err}
		}
		return models.TravelOption{}, domain.InternalError{Err: err}
	}
	return t, nil
}

// Create validates and stores a new travel option. available_seats is not
// an input: it starts at total_seats and belongs to the booking flows from
// then on.
func (s TravelService) Create(ctx context.Context, t models.TravelOption) (models.TravelOption, error) {
	t.TravelCode = utils.NormalizeSpace(t.TravelCode)
	t.Source = utils.NormalizeSpace(t.Source)
	t.Destination = utils.NormalizeSpace(t.Destination)

	switch {
	case t.TravelCode == "":
		return models.TravelOption{}, domain.ValidationError{Field: "travel_code", Msg: "required"}
	case !t.TravelType.Valid():
		return models.TravelOption{}, domain.ValidationError{Field: "travel_type", Msg: "must be flight, train or bus"}
	case t.Source == "":
		return models.TravelOption{}, domain.ValidationError{Field: "source", Msg: "required"}
	case t.Destination == "":
		return models.TravelOption{}, domain.ValidationError{Field: "destination", Msg: "required"}
	case t.Price < 0:
		return models.TravelOption{}, domain.ValidationError{Field: "price", Msg: "must not be negative"}
	case t.TotalSeats < 1:
		return models.TravelOption{}, domain.ValidationError{Field: "total_seats", Msg: "must be at least 1"}
	}

	if _, err := utils.ParseDate(t.DepartureDate); err != nil {
		return models.TravelOption{}, domain.ValidationError{Field: "departure_date", Msg: "must be YYYY-MM-DD"}
	}
	if _, err := utils.ParseDate(t.ArrivalDate); err != nil {
		return models.TravelOption{}, domain.ValidationError{Field: "arrival_date", Msg: "must be YYYY-MM-DD"}
	}

	var err error
	if t.DepartureTime, err = utils.ParseClock(t.DepartureTime); err != nil {
		return models.TravelOption{}, domain.ValidationError{Field: "departure_time", Msg: "must be HH:MM"}
	}
	if t.ArrivalTime, err = utils.ParseClock(t.ArrivalTime); err != nil {
		return models.TravelOption{}, domain.ValidationError{Field: "arrival_time", Msg: "must be HH:MM"}
	}

	created, err := s.travels().Create(ctx, t)
	if err != nil {
		if repositories.IsDuplicateEntry(err) {
			return models.TravelOption{}, domain.ConflictError{Resource: "travel option", Msg: "travel_code already exists", Err: err}
		}
		return models.TravelOption{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "travel", "create", "code="+created.TravelCode)
	return created, nil
}
