package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/police-report-writer-api/api"
	"github.com/linesmerrill/police-report-writer-api/api/scheduler"
	"github.com/linesmerrill/police-report-writer-api/config"
	"github.com/linesmerrill/police-report-writer-api/databases"
	"github.com/linesmerrill/police-report-writer-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	DB       databases.CollectionHelper
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewOfficerDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	rep := Report{RDB: databases.NewReportDatabase(a.dbHelper), SDB: databases.NewSettingsDatabase(a.dbHelper)}
	off := Offense{SDB: databases.NewSettingsDatabase(a.dbHelper)}
	set := Settings{SDB: databases.NewSettingsDatabase(a.dbHelper)}
	o := Officer{ODB: databases.NewOfficerDatabase(a.dbHelper)}
	pre := Preview{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/register", http.HandlerFunc(o.RegisterOfficerHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/report", api.Middleware(http.HandlerFunc(rep.CreateReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{session_id}", api.Middleware(http.HandlerFunc(rep.ReportBySessionIDHandler))).Methods("GET")
	apiCreate.Handle("/report/{session_id}", api.Middleware(http.HandlerFunc(rep.SaveReportHandler))).Methods("PUT")
	apiCreate.Handle("/report/{session_id}", api.Middleware(http.HandlerFunc(rep.DeleteReportHandler))).Methods("DELETE")
	apiCreate.Handle("/report/{session_id}/derive", api.Middleware(api.TimeoutMiddleware(api.QueryTimeout)(http.HandlerFunc(rep.DeriveReportHandler)))).Methods("POST")
	apiCreate.Handle("/report/{session_id}/document", api.Middleware(api.TimeoutMiddleware(api.QueryTimeout)(http.HandlerFunc(rep.DocumentHandler)))).Methods("GET")
	apiCreate.Handle("/report/{session_id}/tokens", api.Middleware(http.HandlerFunc(rep.TokensHandler))).Methods("GET")
	// websocket upgrade does its own handshake, so no auth middleware here
	apiCreate.Handle("/report/{session_id}/preview", http.HandlerFunc(pre.HandlePreviewWebSocket)).Methods("GET")

	apiCreate.Handle("/offenses/search", api.Middleware(http.HandlerFunc(off.OffenseSearchHandler))).Methods("GET")
	apiCreate.Handle("/offenses/overrides", api.Middleware(http.HandlerFunc(off.GetOverridesHandler))).Methods("GET")
	apiCreate.Handle("/offenses/overrides", api.Middleware(http.HandlerFunc(off.ImportOverridesHandler))).Methods("PUT")
	apiCreate.Handle("/offenses/overrides/{literal}", api.Middleware(http.HandlerFunc(off.UpsertOverrideHandler))).Methods("PUT")
	apiCreate.Handle("/offenses/overrides/{literal}", api.Middleware(http.HandlerFunc(off.DeleteOverrideHandler))).Methods("DELETE")
	apiCreate.Handle("/offenses/{literal}", api.Middleware(http.HandlerFunc(off.OffenseByLiteralHandler))).Methods("GET")

	apiCreate.Handle("/settings", api.Middleware(http.HandlerFunc(set.SettingsHandler))).Methods("GET")
	apiCreate.Handle("/settings", api.Middleware(http.HandlerFunc(set.UpdateSettingsHandler))).Methods("PUT")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("police-report-writer-api has connected to the database")

	// nightly purge of stale draft sessions
	scheduler.Start(databases.NewReportDatabase(a.dbHelper))

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
