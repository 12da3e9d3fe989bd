package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	take := c.QueryInt("take", 0)
	offset := c.QueryInt("offset", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count := services.CountMessage(channel)
	messages, err := services.ListMessage(channel, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  messages,
	})
}

func newMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		Uuid         string   `json:"uuid"`
		Content      string   `json:"content"`
		Attachments  []string `json:"attachments"`
		RelatedUsers []uint   `json:"related_users"`
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

	message := models.Message{
		// Identity copied at send time; profile edits don't rewrite history.
		AuthorSnapshot: models.AuthorSnapshot{
			AuthorID:    user.ID,
			AuthorName:  user.Nick,
			AuthorEmail: user.Email,
		},
		Uuid:         data.Uuid,
		Content:      data.Content,
		Attachments:  data.Attachments,
		RelatedUsers: data.RelatedUsers,
		ChannelID:    channel.ID,
	}

	if message, err = services.NewMessage(message); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// The draft for this composer is gone only once the write has landed.
	_ = services.ClearDraft(user, channel.ID, 0)

	return c.JSON(message)
}

func editMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)

	var data struct {
		Content     string   `json:"content"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessageWithAuthor(channel, member, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err = services.EditMessage(message, data.Content, data.Attachments)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(message)
}

func deleteMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessageWithAuthor(channel, member, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err = services.DeleteMessage(message)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(message)
}

func listPinnedMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	messages, err := services.ListPinnedMessage(channel)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(messages)
}

func togglePinMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err = services.TogglePinMessage(message)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(message)
}

func toggleReaction(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	messageId, _ := c.ParamsInt("messageId", 0)

	var data struct {
		Symbol string `json:"symbol" validate:"required,max=16"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	added, err := services.ToggleReaction(message, user, data.Symbol)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	groups, err := services.ListReactionGroup(message)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"added":     added,
		"reactions": groups,
	})
}
