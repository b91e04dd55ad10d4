package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

func TestStatisticsHandler(t *testing.T) {
	reviewed := []models.Case{
		*newTestCase("case-1", models.CaseStatusApproved),
		*newTestCase("case-2", models.CaseStatusApproved),
		*newTestCase("case-3", models.CaseStatusRejected),
	}

	mockDB := mocks.NewCaseDatabase(t)
	mockLaws := mocks.NewTrafficLawDatabase(t)
	mockUDB := mocks.NewUserDatabase(t)
	mockUDB.On("FindByID", mock.Anything, "u1").Return(&models.User{ID: "u1"}, nil)
	mockDB.On("FindReviewedBy", mock.Anything, "u1", mock.AnythingOfType("time.Time")).Return(reviewed, nil)
	mockDB.On("CountByStatus", mock.Anything, models.CaseStatusPending).Return(int64(5), nil)

	handler := Statistics{Engine: workflow.New(mockDB, mockLaws), UDB: mockUDB}

	req := httptest.NewRequest("GET", "/statistics/u1", nil)
	req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})
	w := httptest.NewRecorder()

	handler.StatisticsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Statistics
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.CasesReviewed)
	assert.Equal(t, 2, got.CasesApproved)
	assert.Equal(t, 1, got.CasesRejected)
	assert.Equal(t, 5, got.CasesPending)
}

func TestStatisticsHandlerUserNotFound(t *testing.T) {
	mockDB := mocks.NewCaseDatabase(t)
	mockLaws := mocks.NewTrafficLawDatabase(t)
	mockUDB := mocks.NewUserDatabase(t)
	mockUDB.On("FindByID", mock.Anything, "ghost").Return(nil, workflow.ErrUserNotFound)

	handler := Statistics{Engine: workflow.New(mockDB, mockLaws), UDB: mockUDB}

	req := httptest.NewRequest("GET", "/statistics/ghost", nil)
	req = mux.SetURLVars(req, map[string]string{"user_id": "ghost"})
	w := httptest.NewRecorder()

	handler.StatisticsHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
