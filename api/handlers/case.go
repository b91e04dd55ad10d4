package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// Case exposes the violation case endpoints
type Case struct {
	Engine *workflow.Engine
	Hub    *CaseHub
}

// CreateCaseHandler submits a new violation case on behalf of the
// authenticated user
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var body models.CaseCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := c.Engine.CreateCase(ctx, api.UserIDFromContext(r.Context()), body)
	if err != nil {
		config.ErrorStatus("failed to create case", http.StatusInternalServerError, w, err)
		return
	}

	c.Hub.Broadcast(CaseEvent{Type: eventCaseCreated, Case: *created})

	responseBody, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

// CaseHandler lists cases, optionally filtered by a single status bucket
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var (
		cases []models.Case
		err   error
	)
	status := r.URL.Query().Get("status")
	if status == "" {
		cases, err = c.Engine.ListCases(ctx)
	} else {
		bucket := models.CaseStatus(status)
		switch bucket {
		case models.CaseStatusPending, models.CaseStatusApproved,
			models.CaseStatusRejected, models.CaseStatusOverdue:
		default:
			config.ErrorStatus("unknown status filter", http.StatusBadRequest, w, fmt.Errorf("status == %s", status))
			return
		}
		cases, err = c.Engine.ListCasesByStatus(ctx, bucket)
	}
	if err != nil {
		config.ErrorStatus("failed to list cases", http.StatusInternalServerError, w, err)
		return
	}

	writeCaseList(w, cases)
}

// PendingCasesHandler returns the review queue, newest submission first
func (c Case) PendingCasesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := c.Engine.ListPendingCases(ctx)
	if err != nil {
		config.ErrorStatus("failed to list pending cases", http.StatusInternalServerError, w, err)
		return
	}
	writeCaseList(w, cases)
}

// ReviewedCasesHandler returns approved and rejected cases, newest review first
func (c Case) ReviewedCasesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := c.Engine.ListReviewedCases(ctx)
	if err != nil {
		config.ErrorStatus("failed to list reviewed cases", http.StatusInternalServerError, w, err)
		return
	}
	writeCaseList(w, cases)
}

// CaseByIDHandler returns a single case by its id
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	found, err := c.Engine.GetCase(ctx, caseID)
	if err != nil {
		if errors.Is(err, workflow.ErrCaseNotFound) {
			config.ErrorStatus("case not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get case", http.StatusInternalServerError, w, err)
		return
	}

	responseBody, err := json.Marshal(found)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

// reviewCaseResponse wraps the reviewed case with the law resolution outcome
type reviewCaseResponse struct {
	Case        models.Case `json:"case"`
	LawAttached bool        `json:"law_attached"`
}

// ReviewCaseHandler applies an approve or reject decision to a case
func (c Case) ReviewCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var decision models.CaseReview
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if decision.Status != models.CaseStatusApproved && decision.Status != models.CaseStatusRejected {
		config.ErrorStatus("review status must be approved or rejected", http.StatusBadRequest, w,
			fmt.Errorf("status == %s", decision.Status))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := c.Engine.ReviewCase(ctx, caseID, api.UserIDFromContext(r.Context()), decision)
	if err != nil {
		if errors.Is(err, workflow.ErrCaseNotFound) {
			config.ErrorStatus("case not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to review case", http.StatusInternalServerError, w, err)
		return
	}

	c.Hub.Broadcast(CaseEvent{Type: eventCaseReviewed, Case: *result.Case})

	responseBody, err := json.Marshal(reviewCaseResponse{
		Case:        *result.Case,
		LawAttached: result.LawAttached,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

func writeCaseList(w http.ResponseWriter, cases []models.Case) {
	if cases == nil {
		cases = []models.Case{}
	}
	responseBody, err := json.Marshal(cases)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}
