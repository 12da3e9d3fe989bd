package services

import (
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/rs/zerolog/log"
)

func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-60 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	// Deal soft-deletion
	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().Delete(model, "deleted_at IS NOT NULL AND deleted_at <= ?", deadline)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running database cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}

func DoAutoDraftCleanup() {
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	affected, err := PruneDrafts(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when pruning stale drafts...")
		return
	}

	log.Debug().Int64("affected", affected).Msg("Stale drafts pruned.")
}
