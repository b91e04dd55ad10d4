package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/models"
)

// TrafficLaw exposes the traffic law catalog
type TrafficLaw struct {
	DB databases.TrafficLawDatabase
}

// TrafficLawHandler lists every law in the catalog
func (t TrafficLaw) TrafficLawHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	laws, err := t.DB.ListAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to list traffic laws", http.StatusInternalServerError, w, err)
		return
	}
	if laws == nil {
		laws = []models.TrafficLaw{}
	}

	responseBody, err := json.Marshal(laws)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}
