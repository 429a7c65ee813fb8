package rest

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

func (api *API) ListSavedDestinationsRepo(ctx context.Context, userID uuid.UUID) ([]model.Destination, error) {
	stmt := `SELECT ` + destinationColumns + ` FROM destinations
		JOIN saved_destinations s ON s.destination_id = destinations.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := api.DB.Query(ctx, stmt, userID)
	if err != nil {
		log.Println("unable to list saved destinations", err)
		return nil, err
	}
	defer rows.Close()

	var destinations []model.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

// SaveDestinationRepo is idempotent: re-saving an already saved destination
// succeeds without inserting a duplicate pair. The bool reports whether a
// row was actually added.
func (api *API) SaveDestinationRepo(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	var exists bool
	err := api.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM destinations WHERE id = $1)`, destinationID).Scan(&exists)
	if err != nil {
		log.Println("unable to save destination", err)
		return false, err
	}
	if !exists {
		return false, model.ErrNotFound
	}

	tag, err := api.DB.Exec(ctx,
		`INSERT INTO saved_destinations (user_id, destination_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, destination_id) DO NOTHING`, userID, destinationID)
	if err != nil {
		log.Println("unable to save destination", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UnsaveDestinationRepo is idempotent as well: removing a bookmark that does
// not exist is a no-op success.
func (api *API) UnsaveDestinationRepo(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	tag, err := api.DB.Exec(ctx,
		`DELETE FROM saved_destinations WHERE user_id = $1 AND destination_id = $2`, userID, destinationID)
	if err != nil {
		log.Println("unable to remove saved destination", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
