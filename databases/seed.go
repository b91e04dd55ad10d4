package databases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// sampleLaws is the Ley 63-17 starter catalog loaded on first boot
var sampleLaws = []models.TrafficLaw{
	{Article: "Ley 63-17", Number: "13", Description: "Transitar sin placa", FineAmount: 2500.0},
	{Article: "Ley 63-17", Number: "25", Description: "Exceso de velocidad", FineAmount: 3000.0},
	{Article: "Ley 63-17", Number: "18", Description: "Estacionamiento indebido", FineAmount: 1500.0},
}

const (
	seedAdminEmail    = "admin@367.com"
	seedAdminPassword = "admin123"
)

// SeedSampleData loads the starter traffic-law catalog and the bootstrap
// admin account. Laws are keyed by (article, number) and the admin by email,
// so running this on every boot is safe.
func SeedSampleData(ctx context.Context, laws TrafficLawDatabase, users UserDatabase) error {
	for _, law := range sampleLaws {
		law.ID = uuid.NewString()
		if err := laws.SeedInsert(ctx, law); err != nil {
			return err
		}
	}

	_, err := users.FindByEmail(ctx, seedAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, workflow.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:        uuid.NewString(),
		Email:     seedAdminEmail,
		Password:  string(hashed),
		FullName:  "Administrador 367",
		Role:      models.UserRoleAdmin,
		BadgeID:   "0001",
		Rating:    4.0,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.InsertOne(ctx, admin); err != nil {
		return err
	}

	zap.S().Infow("seeded bootstrap admin", "email", seedAdminEmail)
	return nil
}
