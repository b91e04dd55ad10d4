package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

func TestSearchHandler(t *testing.T) {
	mockDB := mocks.NewCaseDatabase(t)
	mockLaws := mocks.NewTrafficLawDatabase(t)
	mockDB.On("Search", mock.Anything, "crv", int64(100)).
		Return([]models.Case{*newTestCase("case-1", models.CaseStatusPending)}, nil)

	handler := Search{Engine: workflow.New(mockDB, mockLaws)}

	req := httptest.NewRequest("GET", "/search?q=crv", nil)
	w := httptest.NewRecorder()

	handler.SearchHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Case
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "case-1", got[0].ID)
}

func TestSearchHandlerMissingQuery(t *testing.T) {
	mockDB := mocks.NewCaseDatabase(t)
	mockLaws := mocks.NewTrafficLawDatabase(t)

	handler := Search{Engine: workflow.New(mockDB, mockLaws)}

	req := httptest.NewRequest("GET", "/search", nil)
	w := httptest.NewRecorder()

	handler.SearchHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerNoMatches(t *testing.T) {
	mockDB := mocks.NewCaseDatabase(t)
	mockLaws := mocks.NewTrafficLawDatabase(t)
	mockDB.On("Search", mock.Anything, "zzz", int64(100)).Return(nil, nil)

	handler := Search{Engine: workflow.New(mockDB, mockLaws)}

	req := httptest.NewRequest("GET", "/search?q=zzz", nil)
	w := httptest.NewRecorder()

	handler.SearchHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
