package server

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/contrib/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

func unifiedGateway(c *websocket.Conn) {
	user := c.Locals("principal").(models.Account)

	// Push connection
	client := services.ClientRegister(user, c)

	// Event loop
	var task models.UnifiedCommand

	var messageType int
	var packet []byte
	var err error

	for {
		if messageType, packet, err = c.ReadMessage(); err != nil {
			break
		} else if err := jsoniter.Unmarshal(packet, &task); err != nil {
			_ = c.WriteMessage(messageType, models.UnifiedCommand{
				Action:  "error",
				Message: "unable to unmarshal your command, requires json request",
			}.Marshal())
			continue
		}

		message := dealCommand(task, client)

		if message != nil {
			if err = client.Write(*message); err != nil {
				break
			}
		}
	}

	// Pop connection
	services.ClientUnregister(client)
}

func dealCommand(task models.UnifiedCommand, client *services.WsClient) *models.UnifiedCommand {
	switch task.Action {
	case "feed.subscribe":
		var req struct {
			ChannelID uint `json:"channel_id"`
		}
		models.FitStruct(task.Payload, &req)

		channel, _, err := services.GetChannelIdentity(req.ChannelID, client.Account.ID)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		// The previous feed is gone before the new one exists.
		services.SubscribeFeed(client.ID, channel.ID)

		snapshot, err := services.BuildFeedSnapshot(channel.ID)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		return &snapshot
	case "feed.unsubscribe":
		services.UnsubscribeFeed(client.ID)
		return nil
	case "thread.subscribe":
		var req struct {
			ChannelID uint `json:"channel_id"`
			MessageID uint `json:"message_id"`
		}
		models.FitStruct(task.Payload, &req)

		channel, _, err := services.GetChannelIdentity(req.ChannelID, client.Account.ID)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		if _, err := services.GetMessage(channel, req.MessageID); err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		services.SubscribeThread(client.ID, channel.ID, req.MessageID)

		snapshot, err := services.BuildThreadSnapshot(channel.ID, req.MessageID)
		if err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		return &snapshot
	case "thread.unsubscribe":
		services.UnsubscribeThread(client.ID)
		return nil
	default:
		return &models.UnifiedCommand{
			Action:  "error",
			Message: "command not found",
		}
	}
}
