package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedMaxLength caps every feed and thread snapshot.
const FeedMaxLength = 100

func CountMessage(channel models.Channel) int64 {
	var count int64
	if err := database.C.Where(models.Message{
		ChannelID: channel.ID,
	}).Model(&models.Message{}).Count(&count).Error; err != nil {
		return 0
	} else {
		return count
	}
}

// ListMessage returns the newest messages of a channel in ascending creation
// order, the shape every feed snapshot is built from.
func ListMessage(channel models.Channel, take int, offset int) ([]models.Message, error) {
	if take <= 0 || take > FeedMaxLength {
		take = FeedMaxLength
	}

	var messages []models.Message
	if err := database.C.
		Where(models.Message{
			ChannelID: channel.ID,
		}).Limit(take).Offset(offset).
		Order("created_at DESC").
		Preload("Reactions").
		Find(&messages).Error; err != nil {
		return messages, err
	}

	// Oldest first within the window.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func GetMessage(channel models.Channel, id uint) (models.Message, error) {
	var message models.Message
	if err := database.C.
		Where(models.Message{
			BaseModel: models.BaseModel{ID: id},
			ChannelID: channel.ID,
		}).
		Preload("Reactions").
		First(&message).Error; err != nil {
		return message, err
	}
	return message, nil
}

func GetMessageWithAuthor(channel models.Channel, member models.ChannelMember, id uint) (models.Message, error) {
	var message models.Message
	if err := database.C.Where(models.Message{
		BaseModel: models.BaseModel{ID: id},
		ChannelID: channel.ID,
	}).Where("author_id = ?", member.AccountID).First(&message).Error; err != nil {
		return message, err
	}
	return message, nil
}

// ValidateMessageContent applies the composer rule: trimmed non-empty content
// or at least one attachment, otherwise the send is rejected.
func ValidateMessageContent(content string, attachments []string) error {
	if len(strings.TrimSpace(content)) == 0 && len(attachments) == 0 {
		return fmt.Errorf("you cannot send an empty message")
	}
	return nil
}

func NewMessage(message models.Message) (models.Message, error) {
	if err := ValidateMessageContent(message.Content, message.Attachments); err != nil {
		return message, err
	}
	if len(message.Uuid) == 0 {
		message.Uuid = uuid.NewString()
	}

	if err := database.C.Save(&message).Error; err != nil {
		return message, err
	}

	BroadcastFeedSnapshot(message.ChannelID)
	NotifyChannelMessage(message)

	return message, nil
}

func EditMessage(message models.Message, content string, attachments []string) (models.Message, error) {
	if err := ValidateMessageContent(content, attachments); err != nil {
		return message, err
	}

	now := time.Now()
	message.Content = content
	message.Attachments = attachments
	message.EditedAt = &now

	if err := database.C.Save(&message).Error; err != nil {
		return message, err
	}

	BroadcastFeedSnapshot(message.ChannelID)

	return message, nil
}

func DeleteMessage(message models.Message) (models.Message, error) {
	if err := database.C.Delete(&message).Error; err != nil {
		return message, err
	}

	database.C.Where("message_id = ?", message.ID).Delete(&models.Reply{})
	database.C.Where("message_id = ?", message.ID).Delete(&models.Reaction{})

	BroadcastFeedSnapshot(message.ChannelID)

	return message, nil
}

// TogglePinMessage flips the pin flag in place so two racing toggles cannot
// read a stale value.
func TogglePinMessage(message models.Message) (models.Message, error) {
	if err := database.C.Model(&models.Message{}).
		Where("id = ?", message.ID).
		Update("is_pinned", gorm.Expr("NOT is_pinned")).Error; err != nil {
		return message, err
	}

	if err := database.C.First(&message, message.ID).Error; err != nil {
		return message, err
	}

	BroadcastFeedSnapshot(message.ChannelID)

	return message, nil
}

func ListPinnedMessage(channel models.Channel) ([]models.Message, error) {
	var messages []models.Message
	if err := database.C.
		Where(models.Message{ChannelID: channel.ID}).
		Where("is_pinned = ?", true).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}
