package services

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"gorm.io/gorm"
)

// ToggleReaction adds or removes one (account, symbol) pair on a message.
// Add and remove are disjoint row operations guarded by a unique index, so
// concurrent toggles with different symbols never clobber each other.
func ToggleReaction(message models.Message, user models.Account, symbol string) (bool, error) {
	var added bool
	err := database.C.Transaction(func(tx *gorm.DB) error {
		// Hard delete; a soft-deleted row would keep holding the unique index.
		result := tx.Unscoped().Where(models.Reaction{
			MessageID: message.ID,
			AccountID: user.ID,
			Symbol:    symbol,
		}).Delete(&models.Reaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}

		added = true
		return tx.Create(&models.Reaction{
			MessageID: message.ID,
			AccountID: user.ID,
			Symbol:    symbol,
		}).Error
	})
	if err != nil {
		return added, err
	}

	BroadcastFeedSnapshot(message.ChannelID)

	return added, nil
}

func ListReactionGroup(message models.Message) ([]models.ReactionGroup, error) {
	var reactions []models.Reaction
	if err := database.C.Where(models.Reaction{
		MessageID: message.ID,
	}).Order("created_at ASC").Find(&reactions).Error; err != nil {
		return nil, err
	}

	var groups []models.ReactionGroup
	index := make(map[string]int)
	for _, reaction := range reactions {
		if at, ok := index[reaction.Symbol]; ok {
			groups[at].Count++
			groups[at].Accounts = append(groups[at].Accounts, reaction.AccountID)
			continue
		}
		index[reaction.Symbol] = len(groups)
		groups = append(groups, models.ReactionGroup{
			Symbol:   reaction.Symbol,
			Count:    1,
			Accounts: []uint{reaction.AccountID},
		})
	}

	return groups, nil
}
