package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/api/scheduler"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper), JWTSecret: []byte(a.Config.JWTSecret)}
	m.SetupGoGuardian()

	caseDB := databases.NewCaseDatabase(a.dbHelper)
	lawDB := databases.NewTrafficLawDatabase(a.dbHelper)
	userDB := databases.NewUserDatabase(a.dbHelper)
	engine := workflow.New(caseDB, lawDB)

	hub := NewCaseHub()
	go hub.Run()

	r := mux.NewRouter()

	auth := Auth{DB: userDB, M: m}
	c := Case{Engine: engine, Hub: hub}
	search := Search{Engine: engine}
	stats := Statistics{Engine: engine, UDB: userDB}
	law := TrafficLaw{DB: lawDB}
	evidence := Evidence{}
	fine := Fine{Engine: engine, Config: a.Config}
	feed := CaseFeed{Hub: hub}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// the feed stays outside the timeout middleware, websocket connections are
	// long-lived
	r.Handle("/api/v1/cases/feed", http.HandlerFunc(feed.ServeWS)).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(auth.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/me", api.Middleware(http.HandlerFunc(auth.MeHandler))).Methods("GET")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	apiCreate.Handle("/cases/pending", api.Middleware(http.HandlerFunc(c.PendingCasesHandler))).Methods("GET")
	apiCreate.Handle("/cases/reviewed", api.Middleware(http.HandlerFunc(c.ReviewedCasesHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}/review", api.Middleware(http.HandlerFunc(c.ReviewCaseHandler))).Methods("PUT")
	apiCreate.Handle("/cases/{case_id}/fine/checkout", api.Middleware(http.HandlerFunc(fine.CreateCheckoutSessionHandler))).Methods("POST")

	apiCreate.Handle("/traffic-laws", api.Middleware(http.HandlerFunc(law.TrafficLawHandler))).Methods("GET")

	apiCreate.Handle("/statistics/{user_id}", api.Middleware(http.HandlerFunc(stats.StatisticsHandler))).Methods("GET")

	apiCreate.Handle("/search", api.Middleware(http.HandlerFunc(search.SearchHandler))).Methods("GET")

	apiCreate.Handle("/evidence/sign-upload", api.Middleware(http.HandlerFunc(evidence.GenerateSignature))).Methods("POST")

	apiCreate.Handle("/success", http.HandlerFunc(fine.handleSuccessRedirect)).Methods("GET")
	apiCreate.Handle("/cancel", http.HandlerFunc(fine.handleCancelRedirect)).Methods("GET")

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
	zap.S().Info("traffic-case-api has connected to the database")

	ctx, cancel := api.WithQueryTimeout(nil)
	defer cancel()
	err = databases.SeedSampleData(ctx,
		databases.NewTrafficLawDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper))
	if err != nil {
		zap.S().With(err).Error("failed to seed sample data")
		return err
	}

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return fmt.Errorf("stripe secret key is not set")
	}
	stripe.Key = stripeKey

	// start the overdue digest job
	a.Scheduler = scheduler.NewScheduler(databases.NewCaseDatabase(a.dbHelper))
	a.Scheduler.Start()

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
