package databases

// go generate: mockery --name CaseDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

const caseName = "cases"

// CaseDatabase contains the methods to use with the case database. It is the
// mongo-backed workflow.CaseRepository plus the scheduler's overdue query.
type CaseDatabase interface {
	workflow.CaseRepository
	FindPendingPastDue(ctx context.Context, now time.Time) ([]models.Case, error)
}

type caseDatabase struct {
	db DatabaseHelper
}

// NewCaseDatabase initializes a new instance of case database with the provided db connection
func NewCaseDatabase(db DatabaseHelper) CaseDatabase {
	return &caseDatabase{
		db: db,
	}
}

func (c *caseDatabase) Insert(ctx context.Context, record models.Case) error {
	_, err := c.db.Collection(caseName).InsertOne(ctx, record)
	return err
}

func (c *caseDatabase) FindByID(ctx context.Context, id string) (*models.Case, error) {
	record := &models.Case{}
	err := c.db.Collection(caseName).FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, workflow.ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *caseDatabase) FindByStatus(ctx context.Context, statuses []models.CaseStatus, sort workflow.SortField) ([]models.Case, error) {
	filter := bson.M{}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: string(sort), Value: -1}})
	return c.find(ctx, filter, opts)
}

func (c *caseDatabase) UpdateReview(ctx context.Context, id string, update workflow.ReviewUpdate) error {
	set := bson.M{
		"status":      update.Status,
		"reviewed_at": update.ReviewedAt,
		"reviewed_by": update.ReviewedBy,
	}
	if update.Comments != nil {
		set["review_comments"] = *update.Comments
	} else {
		set["review_comments"] = ""
	}
	if update.TrafficLaw != nil {
		set["traffic_law"] = update.TrafficLaw
	}
	if update.FineAmount != nil {
		set["fine_amount"] = *update.FineAmount
	}

	_, err := c.db.Collection(caseName).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	return err
}

func (c *caseDatabase) Search(ctx context.Context, query string, limit int64) ([]models.Case, error) {
	pattern := bson.M{"$regex": query, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"case_number": pattern},
		{"license_plate": pattern},
		{"location": pattern},
	}}
	opts := options.Find().SetLimit(limit)
	return c.find(ctx, filter, opts)
}

func (c *caseDatabase) CountByStatus(ctx context.Context, status models.CaseStatus) (int64, error) {
	return c.db.Collection(caseName).CountDocuments(ctx, bson.M{"status": status})
}

func (c *caseDatabase) FindReviewedBy(ctx context.Context, reviewerID string, since time.Time) ([]models.Case, error) {
	filter := bson.M{
		"reviewed_by": reviewerID,
		"reviewed_at": bson.M{"$gte": since},
	}
	return c.find(ctx, filter, nil)
}

func (c *caseDatabase) FindPendingPastDue(ctx context.Context, now time.Time) ([]models.Case, error) {
	filter := bson.M{
		"status":   models.CaseStatusPending,
		"due_date": bson.M{"$lt": now},
	}
	return c.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
}

func (c *caseDatabase) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Case, error) {
	var cases []models.Case
	var cur CursorHelper
	var err error
	if opts != nil {
		cur, err = c.db.Collection(caseName).Find(ctx, filter, opts)
	} else {
		cur, err = c.db.Collection(caseName).Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	if err = cur.Decode(&cases); err != nil {
		return nil, err
	}
	return cases, nil
}
