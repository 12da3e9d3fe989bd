package services

import (
	"fmt"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// NotifyChannelMessage fans a new message out to channel members as stored
// notifications plus a realtime push, honoring each member's notify level.
func NotifyChannelMessage(message models.Message) {
	var members []models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		ChannelID: message.ChannelID,
	}).Preload("Account").Find(&members).Error; err != nil {
		// Couldn't get channel members, skip notifying
		return
	}

	channel, err := GetChannel(message.ChannelID)
	if err != nil {
		return
	}

	var pending []models.Account
	for _, member := range members {
		if member.AccountID == message.AuthorID {
			continue
		}
		switch member.Notify {
		case models.NotifyLevelNone:
			continue
		case models.NotifyLevelMentioned:
			if !lo.Contains(message.RelatedUsers, member.AccountID) {
				continue
			}
		}
		pending = append(pending, member.Account)
	}

	displayText := message.Content
	if len(displayText) == 0 {
		displayText = fmt.Sprintf("%d attachment(s)", len(message.Attachments))
	}

	for _, account := range pending {
		notification := models.Notification{
			AccountID: account.ID,
			Topic:     "messaging.message",
			Title:     fmt.Sprintf("%s in %s", message.AuthorName, channel.DisplayText()),
			Body:      displayText,
			Metadata: datatypes.JSONMap{
				"channel_id": message.ChannelID,
				"message_id": message.ID,
				"author_id":  message.AuthorID,
			},
		}
		if err := database.C.Save(&notification).Error; err != nil {
			log.Warn().Err(err).Msg("An error occurred when trying notify user.")
			continue
		}

		PushCommand(account.ID, models.UnifiedCommand{
			Action:  "notifications.new",
			Payload: notification,
		})
	}
}

func ListNotification(user models.Account, onlyUnread bool) ([]models.Notification, error) {
	tx := database.C.Where(models.Notification{AccountID: user.ID})
	if onlyUnread {
		tx = tx.Where("read_at IS NULL")
	}

	var notifications []models.Notification
	if err := tx.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return notifications, err
	}

	return notifications, nil
}

func MarkNotificationRead(user models.Account, ids []uint) error {
	return database.C.Model(&models.Notification{}).
		Where("account_id = ? AND id IN ?", user.ID, ids).
		Update("read_at", time.Now()).Error
}
