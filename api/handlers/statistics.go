package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// Statistics exposes the reviewer dashboard counters
type Statistics struct {
	Engine *workflow.Engine
	UDB    databases.UserDatabase
}

// StatisticsHandler returns the review counters for one user. The period
// query param narrows the reviewed counts to the current month when set to
// "current"; the pending count is the global queue size either way.
func (s Statistics) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	period := r.URL.Query().Get("period")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := s.UDB.FindByID(ctx, userID); err != nil {
		if errors.Is(err, workflow.ErrUserNotFound) {
			config.ErrorStatus("user not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return
	}

	stats, err := s.Engine.ComputeStatistics(ctx, userID, period)
	if err != nil {
		config.ErrorStatus("failed to compute statistics", http.StatusInternalServerError, w, err)
		return
	}

	responseBody, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}
