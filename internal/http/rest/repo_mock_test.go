package rest

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/yatrasetgo/packyourbags/config"
	"github.com/yatrasetgo/packyourbags/internal/db"
	deps "github.com/yatrasetgo/packyourbags/internal/debs"
	"github.com/yatrasetgo/packyourbags/util/changefeed"
)

// newMockAPI wires an API against a pgxmock pool so repo SQL runs against
// scripted expectations instead of a live database.
func newMockAPI(t *testing.T) (*API, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	a := &API{
		Config: &config.Config{},
		DB:     mock,
		Deps: &deps.Dependencies{
			DB:         db.NewWithPool(mock),
			ChangeFeed: changefeed.NewHub(),
		},
	}
	return a, mock
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
