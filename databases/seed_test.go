package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/databases/mocks"
	"github.com/plataforma-367/traffic-case-api/models"
)

func TestSeedSampleDataCatalog(t *testing.T) {
	laws := mocks.NewTrafficLawDatabase(t)
	users := mocks.NewUserDatabase(t)

	var seeded []models.TrafficLaw
	laws.On("SeedInsert", mock.Anything, mock.AnythingOfType("models.TrafficLaw")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).(models.TrafficLaw))
		}).
		Return(nil)
	users.On("FindByEmail", mock.Anything, "admin@367.com").
		Return(&models.User{ID: "u1", Email: "admin@367.com"}, nil)

	err := databases.SeedSampleData(context.Background(), laws, users)
	assert.NoError(t, err)

	assert.Len(t, seeded, 3)
	for _, law := range seeded {
		assert.Equal(t, "Ley 63-17", law.Article)
		assert.NotEmpty(t, law.ID)
	}
	assert.Equal(t, "13", seeded[0].Number)
	assert.Equal(t, "25", seeded[1].Number)
	assert.Equal(t, "18", seeded[2].Number)
}
