package databases

// go generate: mockery --name TrafficLawDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

const trafficLawName = "traffic_laws"

// TrafficLawDatabase contains the methods to use with the traffic law
// database. It satisfies workflow.TrafficLawCatalog and adds the idempotent
// seed insert keyed by (article, number).
type TrafficLawDatabase interface {
	workflow.TrafficLawCatalog
	SeedInsert(ctx context.Context, law models.TrafficLaw) error
}

type trafficLawDatabase struct {
	db DatabaseHelper
}

// NewTrafficLawDatabase initializes a new instance of traffic law database with the provided db connection
func NewTrafficLawDatabase(db DatabaseHelper) TrafficLawDatabase {
	return &trafficLawDatabase{
		db: db,
	}
}

func (t *trafficLawDatabase) FindByID(ctx context.Context, id string) (*models.TrafficLaw, error) {
	law := &models.TrafficLaw{}
	err := t.db.Collection(trafficLawName).FindOne(ctx, bson.M{"id": id}).Decode(&law)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, workflow.ErrLawNotFound
	}
	if err != nil {
		return nil, err
	}
	return law, nil
}

func (t *trafficLawDatabase) ListAll(ctx context.Context) ([]models.TrafficLaw, error) {
	var laws []models.TrafficLaw
	cur, err := t.db.Collection(trafficLawName).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if err = cur.Decode(&laws); err != nil {
		return nil, err
	}
	return laws, nil
}

// SeedInsert inserts a law unless one with the same article and number
// already exists
func (t *trafficLawDatabase) SeedInsert(ctx context.Context, law models.TrafficLaw) error {
	count, err := t.db.Collection(trafficLawName).CountDocuments(ctx, bson.M{
		"article": law.Article,
		"number":  law.Number,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = t.db.Collection(trafficLawName).InsertOne(ctx, law)
	return err
}
