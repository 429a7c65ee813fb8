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

func (api *API) TripRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.RequireLogin)

	mux.Method(http.MethodGet, "/", Handler(api.ListTrips))
	mux.Method(http.MethodPost, "/", Handler(api.CreateTrip))
	mux.Method(http.MethodPut, "/{id}/status", Handler(api.UpdateTripStatus))
	mux.Get("/{id}/receipt", api.TripReceipt)

	return mux
}

func (api *API) ListTrips(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	trips, err := api.ListTripsRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get trip history", values.Error, &tc)
	}
	if trips == nil {
		trips = []model.Trip{}
	}

	return &ServerResponse{
		Message:    "Trip history retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       trips,
	}
}

func (api *API) CreateTrip(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	var req model.CreateTripRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid trip details", values.BadRequestBody, &tc)
	}

	destination, err := api.GetDestinationByIDRepo(r.Context(), req.DestinationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return respondWithError(err, "destination not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to book trip", values.Error, &tc)
	}

	trip, err := api.CreateTripRepo(r.Context(), userID, req, destination)
	if err != nil {
		return respondWithError(err, "failed to book trip", values.Error, &tc)
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableTrips,
		Action: changefeed.ActionInsert,
		ID:     trip.ID.String(),
	})

	quote := model.BookingTotal(trip.UnitPrice, trip.Travelers, api.Config.BookingFeeRate)

	return &ServerResponse{
		Message:    "Trip booked successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data: map[string]interface{}{
			"trip":  trip,
			"quote": quote,
		},
	}
}

func (api *API) UpdateTripStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	var req model.UpdateTripStatusRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid trip status", values.BadRequestBody, &tc)
	}

	trip, err := api.UpdateTripStatusRepo(r.Context(), id, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return respondWithError(err, "trip not found", values.NotFound, &tc)
		case errors.Is(err, model.ErrTerminalStatus):
			return respondWithError(err, "trip status can no longer be changed", values.Conflict, &tc)
		default:
			return respondWithError(err, "failed to update trip status", values.Error, &tc)
		}
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableTrips,
		Action: changefeed.ActionUpdate,
		ID:     trip.ID.String(),
	})

	return &ServerResponse{
		Message:    "Trip status updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       trip,
	}
}
