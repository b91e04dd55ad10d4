package handlers

import (
	"fmt"
	"net/http"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// Search struct mostly used for mocking tests
type Search struct {
	Engine *workflow.Engine
}

// SearchHandler returns the cases matching the query across title, case
// number, license plate and location
func (s Search) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		config.ErrorStatus("query param q is required", http.StatusBadRequest, w, fmt.Errorf("q == %s", query))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := s.Engine.SearchCases(ctx, query)
	if err != nil {
		config.ErrorStatus("failed to search cases", http.StatusInternalServerError, w, err)
		return
	}

	writeCaseList(w, cases)
}
