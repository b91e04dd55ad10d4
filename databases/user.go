package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	InsertOne(ctx context.Context, user models.User) error
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindByID(ctx context.Context, id string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"id": id})
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) error {
	_, err := u.db.Collection(userName).InsertOne(ctx, user)
	return err
}

func (u *userDatabase) findOne(ctx context.Context, filter interface{}) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userName).FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, workflow.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
