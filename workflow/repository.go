package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/plataforma-367/traffic-case-api/models"
)

// Sentinel errors returned by repository implementations so the engine can
// tell a missing record apart from a store failure.
var (
	// ErrCaseNotFound is returned when a case id does not resolve
	ErrCaseNotFound = errors.New("case not found")
	// ErrLawNotFound is returned when a traffic law id does not resolve
	ErrLawNotFound = errors.New("traffic law not found")
	// ErrUserNotFound is returned when a user id does not resolve
	ErrUserNotFound = errors.New("user not found")
)

// SortField selects the ordering of a case listing, newest first
type SortField string

// Sort fields supported by CaseRepository.FindByStatus
const (
	SortBySubmittedAt SortField = "submitted_at"
	SortByReviewedAt  SortField = "reviewed_at"
)

// ReviewUpdate is the single atomic write applied to a case when it is
// reviewed. Status, ReviewedAt, ReviewedBy and Comments are always written
// together; TrafficLaw and FineAmount are written only when non-nil, so a
// review without a law never clears a previously attached fine.
type ReviewUpdate struct {
	Status     models.CaseStatus
	ReviewedAt time.Time
	ReviewedBy string
	Comments   *string
	TrafficLaw *models.TrafficLaw
	FineAmount *float64
}

// CaseRepository is the persistence contract the engine depends on. The
// mongo-backed implementation lives in the databases package; tests use an
// in-memory fake.
type CaseRepository interface {
	Insert(ctx context.Context, c models.Case) error
	FindByID(ctx context.Context, id string) (*models.Case, error)
	FindByStatus(ctx context.Context, statuses []models.CaseStatus, sort SortField) ([]models.Case, error)
	UpdateReview(ctx context.Context, id string, update ReviewUpdate) error
	Search(ctx context.Context, query string, limit int64) ([]models.Case, error)
	CountByStatus(ctx context.Context, status models.CaseStatus) (int64, error)
	FindReviewedBy(ctx context.Context, reviewerID string, since time.Time) ([]models.Case, error)
}

// TrafficLawCatalog is the read-only contract for the law reference data
type TrafficLawCatalog interface {
	FindByID(ctx context.Context, id string) (*models.TrafficLaw, error)
	ListAll(ctx context.Context) ([]models.TrafficLaw, error)
}
