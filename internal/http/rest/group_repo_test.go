package rest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/pkg/errors"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

func TestJoinGroupRepoFullGroup(t *testing.T) {
	api, mock := newMockAPI(t)
	groupID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT max_members FROM groups`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM group_members`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := api.JoinGroupRepo(context.Background(), groupID, userID)
	if !errors.Is(err, model.ErrGroupFull) {
		t.Errorf("expected ErrGroupFull, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestJoinGroupRepoDuplicateMember(t *testing.T) {
	api, mock := newMockAPI(t)
	groupID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT max_members FROM groups`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM group_members`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	// the unique pair makes a re-join insert zero rows
	mock.ExpectExec(`INSERT INTO group_members`).
		WithArgs(groupID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectRollback()

	err := api.JoinGroupRepo(context.Background(), groupID, userID)
	if !errors.Is(err, model.ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestJoinGroupRepoLastSlot(t *testing.T) {
	api, mock := newMockAPI(t)
	groupID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT max_members FROM groups`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM group_members`).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`INSERT INTO group_members`).
		WithArgs(groupID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	if err := api.JoinGroupRepo(context.Background(), groupID, userID); err != nil {
		t.Errorf("expected join to succeed, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestJoinGroupRepoMissingGroup(t *testing.T) {
	api, mock := newMockAPI(t)
	groupID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT max_members FROM groups`).
		WithArgs(groupID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := api.JoinGroupRepo(context.Background(), groupID, userID)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}
