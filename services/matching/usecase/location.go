package usecase

import (
	"context"
	"fmt"

	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// ProcessLocationUpdate refreshes a master's entry in the location cache.
// Inactive reports clear the entry so the master stops scoring in matching
// passes until a new location arrives.
func (uc *MatchingUC) ProcessLocationUpdate(ctx context.Context, update models.MasterLocationUpdate) error {
	if update.MasterID == "" {
		return fmt.Errorf("location update without master id")
	}

	if !update.IsActive {
		if err := uc.masterRepo.RemoveLocation(ctx, update.MasterID); err != nil {
			logger.Error("Failed to remove master location",
				logger.String("master_id", update.MasterID),
				logger.Err(err))
			return err
		}
		return nil
	}

	location := update.Location
	if location.Timestamp.IsZero() {
		location.Timestamp = update.Timestamp
	}

	if err := uc.masterRepo.UpdateLocation(ctx, update.MasterID, &location); err != nil {
		logger.Error("Failed to update master location",
			logger.String("master_id", update.MasterID),
			logger.Err(err))
		return err
	}

	return nil
}
