package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/changefeed"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

func (api *API) SavedDestinationRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.RequireLogin)

	mux.Method(http.MethodGet, "/", Handler(api.ListSavedDestinations))
	mux.Method(http.MethodPost, "/", Handler(api.SaveDestination))
	mux.Method(http.MethodDelete, "/{destinationID}", Handler(api.UnsaveDestination))

	return mux
}

func (api *API) ListSavedDestinations(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	destinations, err := api.ListSavedDestinationsRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get saved destinations", values.Error, &tc)
	}
	if destinations == nil {
		destinations = []model.Destination{}
	}

	return &ServerResponse{
		Message:    "Saved destinations retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       destinations,
	}
}

func (api *API) SaveDestination(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	var req model.SaveDestinationRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "destination ID is required", values.BadRequestBody, &tc)
	}

	saved, err := api.SaveDestinationRepo(r.Context(), userID, req.DestinationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return respondWithError(err, "destination not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to save destination", values.Error, &tc)
	}

	if saved {
		api.Deps.ChangeFeed.Publish(changefeed.Event{
			Table:  changefeed.TableSaved,
			Action: changefeed.ActionInsert,
			ID:     req.DestinationID.String(),
		})
	}

	return &ServerResponse{
		Message:    "Destination saved successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
	}
}

func (api *API) UnsaveDestination(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	destinationID, err := util.StringToUUID(chi.URLParam(r, "destinationID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	removed, err := api.UnsaveDestinationRepo(r.Context(), userID, destinationID)
	if err != nil {
		return respondWithError(err, "failed to remove saved destination", values.Error, &tc)
	}

	if removed {
		api.Deps.ChangeFeed.Publish(changefeed.Event{
			Table:  changefeed.TableSaved,
			Action: changefeed.ActionDelete,
			ID:     destinationID.String(),
		})
	}

	return &ServerResponse{
		Message:    "Saved destination removed successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
