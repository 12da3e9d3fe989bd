package services

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// Subscribers get the full current window on every change, not a diff.

func BuildFeedSnapshot(channelId uint) (models.UnifiedCommand, error) {
	channel := models.Channel{BaseModel: models.BaseModel{ID: channelId}}
	messages, err := ListMessage(channel, FeedMaxLength, 0)
	if err != nil {
		return models.UnifiedCommand{}, err
	}

	return models.UnifiedCommand{
		Action: "feed.snapshot",
		Payload: map[string]any{
			"channel_id": channelId,
			"count":      CountMessage(channel),
			"messages":   messages,
		},
	}, nil
}

func BuildThreadSnapshot(channelId, messageId uint) (models.UnifiedCommand, error) {
	replies, err := ListReply(messageId, FeedMaxLength, 0)
	if err != nil {
		return models.UnifiedCommand{}, err
	}

	return models.UnifiedCommand{
		Action: "thread.snapshot",
		Payload: map[string]any{
			"channel_id": channelId,
			"message_id": messageId,
			"count":      CountReply(messageId),
			"replies":    replies,
		},
	}, nil
}

func BroadcastFeedSnapshot(channelId uint) {
	targets := ListFeedSubscriber(channelId)
	if len(targets) == 0 {
		return
	}

	snapshot, err := BuildFeedSnapshot(channelId)
	if err != nil {
		log.Warn().Err(err).Uint("channel", channelId).Msg("Unable to build feed snapshot...")
		return
	}

	for _, clientId := range targets {
		if client, ok := GetClient(clientId); ok {
			_ = client.Write(snapshot)
		}
	}
}

func BroadcastThreadSnapshot(channelId, messageId uint) {
	targets := ListThreadSubscriber(channelId, messageId)
	if len(targets) == 0 {
		return
	}

	snapshot, err := BuildThreadSnapshot(channelId, messageId)
	if err != nil {
		log.Warn().Err(err).Uint("message", messageId).Msg("Unable to build thread snapshot...")
		return
	}

	for _, clientId := range targets {
		if client, ok := GetClient(clientId); ok {
			_ = client.Write(snapshot)
		}
	}
}
