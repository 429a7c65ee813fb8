package rest

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Println("request failed", "request_id", requestID(tc), "message", message, "error", err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func requestID(tc *tracing.Context) string {
	if tc == nil {
		return ""
	}
	return tc.RequestID
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	if err != nil {
		log.Println("request failed", "message", message, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(util.StatusCode(status))
	w.Write([]byte(`{"message":"` + message + `","status":"` + status + `"}`))
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

// errorStatus maps repo sentinels onto response statuses so handlers do not
// hand-pick one per call site.
func errorStatus(err error) string {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return values.NotFound
	case errors.Is(err, model.ErrGroupFull),
		errors.Is(err, model.ErrAlreadyMember),
		errors.Is(err, model.ErrTerminalStatus),
		errors.Is(err, model.ErrConflict):
		return values.Conflict
	case errors.Is(err, model.ErrUpload):
		return values.Error
	default:
		return values.Error
	}
}
