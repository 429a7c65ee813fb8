package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

const tripColumns = `id, user_id, destination_id, destination_name, travel_date, travelers,
	unit_price, status, notes, created_at, updated_at`

func scanTrip(row pgx.Row) (model.Trip, error) {
	var t model.Trip
	err := row.Scan(&t.ID, &t.UserID, &t.DestinationID, &t.DestinationName, &t.TravelDate,
		&t.Travelers, &t.UnitPrice, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (api *API) ListTripsRepo(ctx context.Context, userID uuid.UUID) ([]model.Trip, error) {
	stmt := `SELECT ` + tripColumns + ` FROM trip_history
		WHERE user_id = $1 ORDER BY travel_date DESC`

	rows, err := api.DB.Query(ctx, stmt, userID)
	if err != nil {
		log.Println("unable to list trips", err)
		return nil, err
	}
	defer rows.Close()

	var trips []model.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (api *API) GetTripByIDRepo(ctx context.Context, id, userID uuid.UUID) (model.Trip, error) {
	stmt := `SELECT ` + tripColumns + ` FROM trip_history WHERE id = $1 AND user_id = $2`

	t, err := scanTrip(api.DB.QueryRow(ctx, stmt, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Trip{}, model.ErrNotFound
		}
		log.Println("unable to get trip", err)
		return model.Trip{}, err
	}
	return t, nil
}

func (api *API) CreateTripRepo(ctx context.Context, userID uuid.UUID, req model.CreateTripRequest, destination model.Destination) (model.Trip, error) {
	stmt := `INSERT INTO trip_history
		(user_id, destination_id, destination_name, travel_date, travelers, unit_price, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + tripColumns

	t, err := scanTrip(api.DB.QueryRow(ctx, stmt,
		userID, destination.ID, destination.Name, req.TravelDate, req.Travelers,
		destination.Price, model.TripStatusPlanned, req.Notes))
	if err != nil {
		log.Println("unable to create trip", err)
		return model.Trip{}, err
	}
	return t, nil
}

// UpdateTripStatusRepo locks the row before checking the transition, so a
// completed or cancelled trip can never flip again even under concurrent
// updates.
func (api *API) UpdateTripStatusRepo(ctx context.Context, id, userID uuid.UUID, status string) (model.Trip, error) {
	var trip model.Trip
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var current string
		err := tx.QueryRow(ctx,
			`SELECT status FROM trip_history WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			return err
		}

		if !model.CanTransitionTripStatus(current, status) {
			return model.ErrTerminalStatus
		}

		trip, err = scanTrip(tx.QueryRow(ctx,
			`UPDATE trip_history SET status = $2, updated_at = NOW() WHERE id = $1
			 RETURNING `+tripColumns, id, status))
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrTerminalStatus) {
			log.Println("unable to update trip status", err)
		}
		return model.Trip{}, err
	}
	return trip, nil
}
