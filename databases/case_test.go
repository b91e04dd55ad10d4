package databases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

func TestCaseFindByID(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	singleResult := mocks.NewSingleResultHelper(t)

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("FindOne", mock.Anything, bson.M{"id": "case-1"}).Return(singleResult)
	singleResult.On("Decode", mock.AnythingOfType("**models.Case")).
		Run(func(args mock.Arguments) {
			record := args.Get(0).(**models.Case)
			*record = &models.Case{ID: "case-1", CaseNumber: "#A1B2C3"}
		}).Return(nil)

	caseDB := databases.NewCaseDatabase(dbHelper)

	got, err := caseDB.FindByID(context.Background(), "case-1")
	assert.NoError(t, err)
	assert.Equal(t, "#A1B2C3", got.CaseNumber)
}

func TestCaseFindByIDNotFound(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	singleResult := mocks.NewSingleResultHelper(t)

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("FindOne", mock.Anything, bson.M{"id": "missing"}).Return(singleResult)
	singleResult.On("Decode", mock.AnythingOfType("**models.Case")).Return(mongo.ErrNoDocuments)

	caseDB := databases.NewCaseDatabase(dbHelper)

	_, err := caseDB.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, workflow.ErrCaseNotFound)
}

func TestCaseCountByStatus(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("CountDocuments", mock.Anything, bson.M{"status": models.CaseStatusPending}).
		Return(int64(4), nil)

	caseDB := databases.NewCaseDatabase(dbHelper)

	count, err := caseDB.CountByStatus(context.Background(), models.CaseStatusPending)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestCaseUpdateReviewClearsCommentsWhenNil(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("UpdateOne", mock.Anything, bson.M{"id": "case-1"}, mock.MatchedBy(func(update interface{}) bool {
		set, ok := update.(bson.M)["$set"].(bson.M)
		if !ok {
			return false
		}
		comments, present := set["review_comments"]
		_, hasLaw := set["traffic_law"]
		return present && comments == "" && !hasLaw
	})).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	caseDB := databases.NewCaseDatabase(dbHelper)

	err := caseDB.UpdateReview(context.Background(), "case-1", workflow.ReviewUpdate{
		Status:     models.CaseStatusApproved,
		ReviewedAt: time.Now().UTC(),
		ReviewedBy: "u1",
	})
	assert.NoError(t, err)
}

func TestCaseSearchLimitsResults(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	cursor := mocks.NewCursorHelper(t)

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("Find", mock.Anything, mock.Anything, mock.AnythingOfType("*options.FindOptions")).
		Return(cursor, nil)
	cursor.On("Decode", mock.AnythingOfType("*[]models.Case")).
		Run(func(args mock.Arguments) {
			cases := args.Get(0).(*[]models.Case)
			*cases = []models.Case{{ID: "case-1", Title: "Parked on the sidewalk"}}
		}).Return(nil)

	caseDB := databases.NewCaseDatabase(dbHelper)

	got, err := caseDB.Search(context.Background(), "sidewalk", 100)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "case-1", got[0].ID)
}

func TestCaseFindPendingPastDue(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	cursor := mocks.NewCursorHelper(t)

	now := time.Now().UTC()

	dbHelper.On("Collection", "cases").Return(collection)
	collection.On("Find", mock.Anything, bson.M{
		"status":   models.CaseStatusPending,
		"due_date": bson.M{"$lt": now},
	}, mock.AnythingOfType("*options.FindOptions")).Return(cursor, nil)
	cursor.On("Decode", mock.AnythingOfType("*[]models.Case")).Return(nil)

	caseDB := databases.NewCaseDatabase(dbHelper)

	_, err := caseDB.FindPendingPastDue(context.Background(), now)
	assert.NoError(t, err)
}
