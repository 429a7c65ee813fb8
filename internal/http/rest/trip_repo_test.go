package rest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/pkg/errors"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

var tripRowColumns = []string{
	"id", "user_id", "destination_id", "destination_name", "travel_date",
	"travelers", "unit_price", "status", "notes", "created_at", "updated_at",
}

func TestUpdateTripStatusRepoTerminal(t *testing.T) {
	api, mock := newMockAPI(t)
	tripID, userID := uuid.New(), uuid.New()

	for _, terminal := range []string{model.TripStatusCompleted, model.TripStatusCancelled} {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM trip_history`).
			WithArgs(tripID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(terminal))
		mock.ExpectRollback()

		_, err := api.UpdateTripStatusRepo(context.Background(), tripID, userID, model.TripStatusPlanned)
		if !errors.Is(err, model.ErrTerminalStatus) {
			t.Errorf("status %q: expected ErrTerminalStatus, got %v", terminal, err)
		}
	}
	expectationsMet(t, mock)
}

func TestUpdateTripStatusRepoPlannedToCancelled(t *testing.T) {
	api, mock := newMockAPI(t)
	tripID, userID := uuid.New(), uuid.New()
	destID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM trip_history`).
		WithArgs(tripID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(model.TripStatusPlanned))
	mock.ExpectQuery(`UPDATE trip_history SET status`).
		WithArgs(tripID, model.TripStatusCancelled).
		WillReturnRows(pgxmock.NewRows(tripRowColumns).AddRow(
			tripID, userID, &destID, "Spiti Valley", now,
			2, 9999, model.TripStatusCancelled, (*string)(nil), now, now,
		))
	mock.ExpectCommit()

	trip, err := api.UpdateTripStatusRepo(context.Background(), tripID, userID, model.TripStatusCancelled)
	if err != nil {
		t.Fatalf("expected transition to succeed, got %v", err)
	}
	if trip.Status != model.TripStatusCancelled {
		t.Errorf("trip status = %q; want %q", trip.Status, model.TripStatusCancelled)
	}
	expectationsMet(t, mock)
}

func TestUpdateTripStatusRepoWrongUser(t *testing.T) {
	api, mock := newMockAPI(t)
	tripID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM trip_history`).
		WithArgs(tripID, userID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := api.UpdateTripStatusRepo(context.Background(), tripID, userID, model.TripStatusCompleted)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}
