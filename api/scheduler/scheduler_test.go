package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
)

func TestDigestFormatting(t *testing.T) {
	submitted := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	cases := []models.Case{
		{
			CaseNumber:  "#A1B2C3",
			Title:       "Parked on the sidewalk",
			SubmittedAt: submitted,
			DueDate:     submitted.Add(7 * 24 * time.Hour),
		},
	}

	plain := digestPlainText(cases)
	assert.Contains(t, plain, "#A1B2C3")
	assert.Contains(t, plain, "Parked on the sidewalk")
	assert.Contains(t, plain, "2026-08-08")

	html := digestHTML(cases)
	assert.Contains(t, html, "<li><strong>#A1B2C3</strong>")
	assert.Contains(t, html, "due 2026-08-08")
}

func TestSendOverdueDigestNoCases(t *testing.T) {
	mockDB := mocks.NewCaseDatabase(t)
	mockDB.On("FindPendingPastDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, nil)

	s := NewScheduler(mockDB)
	s.sendOverdueDigest()
}
