package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	appRepos "github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	"github.com/fiftyvillagers/seva-portal/internal/config"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/auth"
)

// CreateDefaultData seeds the records the workflow cannot run without: an
// admin account and at least one exam center. Re-running is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	centerRepo := appRepos.NewExamCenterRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin user, exam center)...")
	var finalErr error

	// --- Default admin account --- //
	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@fiftyvillagers.org")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "ChangeMe@123")

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := auth.HashPassword(adminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Name:     "Portal Admin",
				Email:    adminEmail,
				Password: hashed,
				Role:     enums.RoleAdmin,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
			}
		}
	}

	// --- Default exam center --- //
	count, err := centerRepo.CountCenters(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting exam centers")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		// Exam date defaults to roughly three months out; admins adjust it
		// through the database until center management gets a UI.
		center := &appModels.ExamCenter{
			Name:     "Sansthan Campus",
			Location: "Fifty Villagers Seva Sansthan, Rajasthan",
			ExamDate: time.Now().AddDate(0, 3, 0).Truncate(24 * time.Hour),
		}
		if err := centerRepo.Create(ctx, center); err != nil {
			lgr.Error().Err(err).Msg("Error creating default exam center")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int64("centerId", center.ID).Msg("Default exam center created")
		}
	}

	return finalErr
}
