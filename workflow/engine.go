package workflow

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plataforma-367/traffic-case-api/models"
)

// reviewPeriod is how long a case may sit in the pending queue before it is
// shown as overdue
const reviewPeriod = 7 * 24 * time.Hour

// searchResultLimit caps the number of matches returned by SearchCases
const searchResultLimit = 100

// Engine owns the case state machine: creation, listing, review decisions,
// fine attachment and reviewer statistics. It holds no state of its own;
// every operation is a read or a single write against the injected
// repositories. Now is swappable so tests control the clock.
type Engine struct {
	Cases CaseRepository
	Laws  TrafficLawCatalog
	Now   func() time.Time
}

// New returns an engine backed by the given repositories
func New(cases CaseRepository, laws TrafficLawCatalog) *Engine {
	return &Engine{Cases: cases, Laws: laws, Now: time.Now}
}

// ReviewResult is returned by ReviewCase. LawAttached lets callers tell
// "no law requested" apart from "law requested but not found"; the stored
// case looks the same either way.
type ReviewResult struct {
	Case         *models.Case
	LawRequested bool
	LawAttached  bool
}

// CreateCase persists a new pending case submitted by the given user and
// returns the stored record. Empty field values are accepted as-is.
func (e *Engine) CreateCase(ctx context.Context, submitterID string, in models.CaseCreate) (*models.Case, error) {
	now := e.Now().UTC()

	c := models.Case{
		ID:           uuid.NewString(),
		CaseNumber:   generateCaseNumber(),
		Title:        in.Title,
		Description:  in.Description,
		LicensePlate: in.LicensePlate,
		Location:     in.Location,
		Coordinates:  in.Coordinates,
		Images:       in.Images,
		Status:       models.CaseStatusPending,
		SubmittedBy:  submitterID,
		SubmittedAt:  now,
		DueDate:      now.Add(reviewPeriod),
	}
	if c.Images == nil {
		c.Images = []models.CaseImage{}
	}

	if err := e.Cases.Insert(ctx, c); err != nil {
		return nil, err
	}

	zap.S().Infow("case created",
		"case_id", c.ID,
		"case_number", c.CaseNumber,
		"submitted_by", submitterID,
	)
	return &c, nil
}

// GetCase returns a single case by id, with the overdue label derived
func (e *Engine) GetCase(ctx context.Context, id string) (*models.Case, error) {
	c, err := e.Cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.labelOverdue(c)
	return c, nil
}

// ListCases returns every case, newest submission first
func (e *Engine) ListCases(ctx context.Context) ([]models.Case, error) {
	cases, err := e.Cases.FindByStatus(ctx, nil, SortBySubmittedAt)
	if err != nil {
		return nil, err
	}
	return e.labelOverdueAll(cases), nil
}

// ListCasesByStatus returns cases matching a single status. Pending and
// overdue both live in storage as pending; the due-date predicate splits
// them here at read time.
func (e *Engine) ListCasesByStatus(ctx context.Context, status models.CaseStatus) ([]models.Case, error) {
	stored := status
	if status == models.CaseStatusOverdue {
		stored = models.CaseStatusPending
	}
	cases, err := e.Cases.FindByStatus(ctx, []models.CaseStatus{stored}, SortBySubmittedAt)
	if err != nil {
		return nil, err
	}
	cases = e.labelOverdueAll(cases)
	if status != models.CaseStatusPending && status != models.CaseStatusOverdue {
		return cases, nil
	}
	filtered := []models.Case{}
	for _, c := range cases {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// ListPendingCases returns the pending queue (pending plus derived overdue),
// newest submission first
func (e *Engine) ListPendingCases(ctx context.Context) ([]models.Case, error) {
	cases, err := e.Cases.FindByStatus(ctx, []models.CaseStatus{models.CaseStatusPending}, SortBySubmittedAt)
	if err != nil {
		return nil, err
	}
	return e.labelOverdueAll(cases), nil
}

// ListReviewedCases returns approved and rejected cases, newest review first
func (e *Engine) ListReviewedCases(ctx context.Context) ([]models.Case, error) {
	return e.Cases.FindByStatus(ctx,
		[]models.CaseStatus{models.CaseStatusApproved, models.CaseStatusRejected},
		SortByReviewedAt)
}

// ReviewCase applies a review decision to a case. The decision fields are
// written as one update: status, reviewed_at, reviewed_by and comments always
// move together. When the decision names a traffic law that resolves in the
// catalog, the law record and its fine amount are snapshotted onto the case;
// an unresolvable law id is skipped without error and reported through
// LawAttached. The returned case is re-read from storage after the write.
func (e *Engine) ReviewCase(ctx context.Context, id, reviewerID string, decision models.CaseReview) (*ReviewResult, error) {
	if _, err := e.Cases.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := ReviewUpdate{
		Status:     decision.Status,
		ReviewedAt: e.Now().UTC(),
		ReviewedBy: reviewerID,
		Comments:   decision.Comments,
	}

	result := ReviewResult{LawRequested: decision.TrafficLawID != ""}
	if result.LawRequested {
		law, err := e.Laws.FindByID(ctx, decision.TrafficLawID)
		switch {
		case errors.Is(err, ErrLawNotFound):
			// fine attachment is skipped, the status change still applies
			zap.S().Warnw("review referenced an unknown traffic law",
				"case_id", id,
				"traffic_law_id", decision.TrafficLawID,
			)
		case err != nil:
			return nil, err
		default:
			snapshot := *law
			update.TrafficLaw = &snapshot
			update.FineAmount = &snapshot.FineAmount
			result.LawAttached = true
		}
	}

	if err := e.Cases.UpdateReview(ctx, id, update); err != nil {
		return nil, err
	}

	updated, err := e.Cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.labelOverdue(updated)
	result.Case = updated

	zap.S().Infow("case reviewed",
		"case_id", id,
		"status", decision.Status,
		"reviewed_by", reviewerID,
		"law_attached", result.LawAttached,
	)
	return &result, nil
}

// SearchCases returns up to 100 cases whose title, case number, license plate
// or location contains the query, matched case-insensitively
func (e *Engine) SearchCases(ctx context.Context, query string) ([]models.Case, error) {
	cases, err := e.Cases.Search(ctx, strings.TrimSpace(query), searchResultLimit)
	if err != nil {
		return nil, err
	}
	return e.labelOverdueAll(cases), nil
}

// ComputeStatistics derives the dashboard counters for one reviewer. Period
// "current" bounds the reviewed counts to the current calendar month; any
// other value means all time. The pending count is always the global queue
// size, whoever asks.
func (e *Engine) ComputeStatistics(ctx context.Context, userID, period string) (*models.Statistics, error) {
	var since time.Time
	if period == "current" {
		now := e.Now()
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	reviewed, err := e.Cases.FindReviewedBy(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := models.Statistics{CasesReviewed: len(reviewed)}
	for _, c := range reviewed {
		switch c.Status {
		case models.CaseStatusApproved:
			stats.CasesApproved++
		case models.CaseStatusRejected:
			stats.CasesRejected++
		}
	}

	pending, err := e.Cases.CountByStatus(ctx, models.CaseStatusPending)
	if err != nil {
		return nil, err
	}
	stats.CasesPending = int(pending)

	return &stats, nil
}

// labelOverdue rewrites a stored pending status as overdue once the due date
// has passed. Reviewed cases are never relabelled.
func (e *Engine) labelOverdue(c *models.Case) {
	if c.Status == models.CaseStatusPending && e.Now().UTC().After(c.DueDate) {
		c.Status = models.CaseStatusOverdue
	}
}

func (e *Engine) labelOverdueAll(cases []models.Case) []models.Case {
	for i := range cases {
		e.labelOverdue(&cases[i])
	}
	if cases == nil {
		cases = []models.Case{}
	}
	return cases
}

// generateCaseNumber returns a short human-readable reference like #3FA9C2.
// Six hex chars off a random uuid; collisions are theoretically possible and
// accepted, the uuid id field is the real identity.
func generateCaseNumber() string {
	id := uuid.New()
	return "#" + strings.ToUpper(hex.EncodeToString(id[:3]))
}
