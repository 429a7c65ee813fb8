package rest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yatrasetgo/packyourbags/config"
	deps "github.com/yatrasetgo/packyourbags/internal/debs"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util/values"
)

// Names made entirely of punctuation pass the length validation but slugify
// to nothing, which would insert a row no destination URL can reach. The
// helper must reject them before touching the database.
func TestCreateDestinationHelperRejectsEmptySlug(t *testing.T) {
	api := &API{Config: &config.Config{}, Deps: &deps.Dependencies{}}

	cases := []struct {
		name     string
		destName string
	}{
		{name: "punctuation only", destName: "!!"},
		{name: "symbols and spaces", destName: "@# $%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := model.CreateDestinationRequest{
				Name:         tc.destName,
				Location:     "Goa",
				Description1: "Beaches and shacks",
				Categories:   []string{"fun"},
			}
			_, status, _, err := api.CreateDestinationHelper(context.Background(), req, nil)
			if err == nil {
				t.Fatal("expected error for name with no slug characters, got nil")
			}
			if status != values.BadRequestBody {
				t.Errorf("status = %q; want %q", status, values.BadRequestBody)
			}
		})
	}
}

func TestUpdateDestinationHelperRejectsEmptySlug(t *testing.T) {
	api := &API{Config: &config.Config{}, Deps: &deps.Dependencies{}}

	req := model.UpdateDestinationRequest{
		Name:         "???",
		Location:     "Goa",
		Description1: "Beaches and shacks",
		Categories:   []string{"fun"},
	}
	_, status, _, err := api.UpdateDestinationHelper(context.Background(), uuid.Nil, req, nil)
	if err == nil {
		t.Fatal("expected error for name with no slug characters, got nil")
	}
	if status != values.BadRequestBody {
		t.Errorf("status = %q; want %q", status, values.BadRequestBody)
	}
}
