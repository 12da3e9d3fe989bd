package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listReply(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)
	take := c.QueryInt("take", 0)
	offset := c.QueryInt("offset", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count := services.CountReply(message.ID)
	replies, err := services.ListReply(message.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  replies,
	})
}

func newReply(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)

	var data struct {
		Uuid        string   `json:"uuid"`
		Content     string   `json:"content"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if err := services.ValidateMessageContent(data.Content, data.Attachments); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	parent, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	reply := models.Reply{
		AuthorSnapshot: models.AuthorSnapshot{
			AuthorID:    user.ID,
			AuthorName:  user.Nick,
			AuthorEmail: user.Email,
		},
		Uuid:        data.Uuid,
		Content:     data.Content,
		Attachments: data.Attachments,
	}

	if reply, err = services.NewReply(parent, reply); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// The thread composer's draft is scoped to the parent message.
	_ = services.ClearDraft(user, channel.ID, parent.ID)

	return c.JSON(reply)
}
