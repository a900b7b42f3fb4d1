package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/db"
)

// SeedMarkerRepository keeps one sample_seeds row per seeded owner.
type SeedMarkerRepository struct {
	db *gorm.DB
}

func NewSeedMarkerRepository(db *gorm.DB) *SeedMarkerRepository {
	return &SeedMarkerRepository{db: db}
}

func (r *SeedMarkerRepository) IsSeeded(ctx context.Context, ownerID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.SampleSeedModel{}).Where("user_id = ?", ownerID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to read seed marker: %w", err)
	}
	return count > 0, nil
}

func (r *SeedMarkerRepository) MarkSeeded(ctx context.Context, ownerID string) error {
	row := &models.SampleSeedModel{
		UserID:   ownerID,
		SeededAt: biztime.FormatTimestamp(biztime.NowUTC()),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
		return fmt.Errorf("failed to write seed marker: %w", err)
	}
	return nil
}
