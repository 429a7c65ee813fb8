package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/yatrasetgo/packyourbags/config"
	"github.com/yatrasetgo/packyourbags/internal/db"
	deps "github.com/yatrasetgo/packyourbags/internal/debs"
	smtp "github.com/yatrasetgo/packyourbags/util/email"
	"github.com/yatrasetgo/packyourbags/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	Mailer *smtp.Mailer
	DB     db.Pool
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", values.HeaderRequestID, values.HeaderRequestSource},
		MaxAge:         300,
	}))
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Pack Your Bags!"))
		},
	)

	mux.Mount("/auth", api.AuthRoutes())
	mux.Mount("/destinations", api.DestinationRoutes())
	mux.Mount("/groups", api.GroupRoutes())
	mux.Mount("/saved-destinations", api.SavedDestinationRoutes())
	mux.Mount("/trips", api.TripRoutes())
	mux.Mount("/users", api.UserRoutes())

	mux.Get("/realtime", api.Deps.ChangeFeed.HandleConnections)

	return mux
}

func (a *API) Shutdown() error {
	err := a.Server.Shutdown(context.Background())
	if err != nil {
		return err
	}
	return nil
}
