package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListGroups))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/mine", Handler(api.ListMyGroups))
		r.Method(http.MethodPost, "/", Handler(api.CreateGroup))
		r.Method(http.MethodPost, "/{id}/join", Handler(api.JoinGroup))
		r.Method(http.MethodDelete, "/{id}/leave", Handler(api.LeaveGroup))
	})

	mux.Method(http.MethodGet, "/{id}", Handler(api.GetGroup))

	return mux
}

func (api *API) ListGroups(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	search := r.URL.Query().Get("search")

	groups, err := api.ListGroupsRepo(r.Context(), search)
	if err != nil {
		return respondWithError(err, "failed to get travel groups", values.Error, &tc)
	}
	if groups == nil {
		groups = []model.Group{}
	}

	return &ServerResponse{
		Message:    "Travel groups retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) ListMyGroups(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	groups, err := api.ListGroupsByMemberRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get travel groups", values.Error, &tc)
	}
	if groups == nil {
		groups = []model.Group{}
	}

	return &ServerResponse{
		Message:    "Travel groups retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) GetGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	group, members, err := api.GetGroupByIDRepo(r.Context(), id)
	if err != nil {
		return respondWithError(err, "travel group not found", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Travel group retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"group":           group,
			"members":         members,
			"available_slots": model.AvailableSlots(group),
		},
	}
}

func (api *API) CreateGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	var req model.CreateGroupRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.CreateGroupHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       group,
	}
}

func (api *API) JoinGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	status, message, err := api.JoinGroupHelper(r.Context(), id, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) LeaveGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	status, message, err := api.LeaveGroupHelper(r.Context(), id, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
