package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.RequireLogin)

	mux.Method(http.MethodGet, "/me", Handler(api.GetProfile))
	mux.Method(http.MethodPut, "/me", Handler(api.UpdateProfile))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireAdmin)
		r.Method(http.MethodGet, "/", Handler(api.ListUsers))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteUser))
	})

	return mux
}

func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	user, err := api.GetUserByID(r.Context(), userID.String())
	if err != nil {
		return respondWithError(err, "user not found", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Profile retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}

func (api *API) UpdateProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
	}

	var req model.UpdateProfileRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid profile details", values.BadRequestBody, &tc)
	}

	user, err := api.UpdateProfileRepo(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, "failed to update profile", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Profile updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}

func (api *API) ListUsers(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	users, err := api.ListUsersRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to get users", values.Error, &tc)
	}
	if users == nil {
		users = []model.User{}
	}

	return &ServerResponse{
		Message:    "Users retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       users,
	}
}

func (api *API) DeleteUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	if err := api.SoftDeleteUserRepo(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return respondWithError(err, "user not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to delete user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
