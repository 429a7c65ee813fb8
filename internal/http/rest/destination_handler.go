package rest

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

const maxImageUploadBytes = 10 << 20 // 10 MB

func (api *API) DestinationRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListDestinations))
	mux.Method(http.MethodGet, "/{slug}", Handler(api.GetDestinationBySlug))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodPost, "/", Handler(api.CreateDestination))
		r.Method(http.MethodPut, "/{id}", Handler(api.UpdateDestination))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteDestination))
	})

	return mux
}

func (api *API) ListDestinations(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	params := model.ListDestinationsParams{
		Order: r.URL.Query().Get("order"),
	}
	if raw := r.URL.Query().Get("categories"); raw != "" {
		params.Categories = strings.Split(raw, ",")
	}

	destinations, err := api.ListDestinationsRepo(r.Context(), params)
	if err != nil {
		return respondWithError(err, "failed to get destinations", values.Error, &tc)
	}
	if destinations == nil {
		destinations = []model.Destination{}
	}

	return &ServerResponse{
		Message:    "Destinations retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       destinations,
	}
}

func (api *API) GetDestinationBySlug(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	slug := util.Slugify(chi.URLParam(r, "slug"))

	destination, err := api.GetDestinationBySlugRepo(r.Context(), slug)
	if err != nil {
		return respondWithError(err, "destination not found", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Destination retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       destination,
	}
}

// decodeDestinationForm reads the multipart admin form. The image arrives as
// a file part named "image"; everything else is plain fields.
func decodeDestinationForm(r *http.Request) (model.CreateDestinationRequest, multipart.File, error) {
	var req model.CreateDestinationRequest

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		return req, nil, err
	}

	req.Name = r.FormValue("name")
	req.Location = r.FormValue("location")
	req.Description1 = r.FormValue("description1")
	if v := r.FormValue("description2"); v != "" {
		req.Description2 = util.StrPtr(v)
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.Atoi(v)
		if err != nil {
			return req, nil, err
		}
		req.Price = price
	}
	if v := r.FormValue("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, nil, err
		}
		req.Rating = rating
	}
	if v := r.FormValue("categories"); v != "" {
		req.Categories = strings.Split(v, ",")
	}
	if v := r.FormValue("best_time"); v != "" {
		req.BestTime = util.StrPtr(v)
	}
	for _, exp := range r.Form["expectations"] {
		if util.NotBlank(exp) {
			req.Expectations = append(req.Expectations, exp)
		}
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return req, nil, nil
		}
		return req, nil, err
	}
	return req, file, nil
}

func (api *API) CreateDestination(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	req, file, err := decodeDestinationForm(r)
	if err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if file == nil {
		return respondWithError(nil, "destination image is required", values.BadRequestBody, &tc)
	}
	defer file.Close()

	destination, status, message, err := api.CreateDestinationHelper(r.Context(), req, file)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       destination,
	}
}

func (api *API) UpdateDestination(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	req, file, err := decodeDestinationForm(r)
	if err != nil {
		return respondWithError(err, "unable to decode request", values.BadRequestBody, &tc)
	}
	if file != nil {
		defer file.Close()
	}

	destination, status, message, err := api.UpdateDestinationHelper(r.Context(), id, model.UpdateDestinationRequest(req), file)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       destination,
	}
}

func (api *API) DeleteDestination(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteDestinationHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
