package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

func TestUserFindByEmail(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	singleResult := mocks.NewSingleResultHelper(t)

	dbHelper.On("Collection", "users").Return(collection)
	collection.On("FindOne", mock.Anything, bson.M{"email": "admin@367.com"}).Return(singleResult)
	singleResult.On("Decode", mock.AnythingOfType("**models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(**models.User)
			*user = &models.User{ID: "u1", Email: "admin@367.com"}
		}).Return(nil)

	userDB := databases.NewUserDatabase(dbHelper)

	got, err := userDB.FindByEmail(context.Background(), "admin@367.com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestUserFindByEmailNotFound(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collection := mocks.NewCollectionHelper(t)
	singleResult := mocks.NewSingleResultHelper(t)

	dbHelper.On("Collection", "users").Return(collection)
	collection.On("FindOne", mock.Anything, bson.M{"email": "ghost@367.do"}).Return(singleResult)
	singleResult.On("Decode", mock.AnythingOfType("**models.User")).Return(mongo.ErrNoDocuments)

	userDB := databases.NewUserDatabase(dbHelper)

	_, err := userDB.FindByEmail(context.Background(), "ghost@367.do")
	assert.ErrorIs(t, err, workflow.ErrUserNotFound)
}
