package services

import (
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CountReply(messageId uint) int64 {
	var count int64
	if err := database.C.Where(models.Reply{
		MessageID: messageId,
	}).Model(&models.Reply{}).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// ListReply returns a thread's replies oldest first; both the thread view and
// the task detail view read this same stream.
func ListReply(messageId uint, take int, offset int) ([]models.Reply, error) {
	if take <= 0 || take > FeedMaxLength {
		take = FeedMaxLength
	}

	var replies []models.Reply
	if err := database.C.
		Where(models.Reply{
			MessageID: messageId,
		}).Limit(take).Offset(offset).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return replies, err
	}

	return replies, nil
}

// NewReply inserts the reply and maintains the parent's thread aggregate in
// one transaction. The counter uses an in-database increment, never a
// read-then-write, so concurrent replies cannot lose updates and a crash
// cannot leave reply_count trailing the reply rows.
func NewReply(parent models.Message, reply models.Reply) (models.Reply, error) {
	if err := ValidateMessageContent(reply.Content, reply.Attachments); err != nil {
		return reply, err
	}
	if len(reply.Uuid) == 0 {
		reply.Uuid = uuid.NewString()
	}
	reply.MessageID = parent.ID
	reply.ChannelID = parent.ChannelID

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}

		snapshot := datatypes.JSONMap{
			"author_id":    reply.AuthorID,
			"author_name":  reply.AuthorName,
			"author_email": reply.AuthorEmail,
			"content":      reply.Content,
			"created_at":   reply.CreatedAt,
		}

		return tx.Model(&models.Message{}).
			Where("id = ?", parent.ID).
			Updates(map[string]any{
				"reply_count":          gorm.Expr("reply_count + ?", 1),
				"last_reply":           snapshot,
				"last_thread_activity": time.Now(),
			}).Error
	})
	if err != nil {
		return reply, err
	}

	BroadcastThreadSnapshot(parent.ChannelID, parent.ID)
	// The parent's aggregate changed, so feed subscribers get a fresh window too.
	BroadcastFeedSnapshot(parent.ChannelID)

	return reply, nil
}

func GetReply(messageId uint, id uint) (models.Reply, error) {
	var reply models.Reply
	if err := database.C.Where(models.Reply{
		BaseModel: models.BaseModel{ID: id},
		MessageID: messageId,
	}).First(&reply).Error; err != nil {
		return reply, err
	}
	return reply, nil
}
