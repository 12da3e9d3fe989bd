package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getDraft(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId := c.QueryInt("channel", 0)
	threadId := c.QueryInt("thread", 0)

	if channelId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "channel is required")
	}

	draft, ok := services.LoadDraft(user, uint(channelId), uint(threadId))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no draft for this composer")
	}

	return c.JSON(draft)
}

func saveDraft(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var data struct {
		ChannelID   uint     `json:"channel_id" validate:"required"`
		ThreadID    uint     `json:"thread_id"`
		Content     string   `json:"content"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	services.SaveDraft(user, data.ChannelID, data.ThreadID, data.Content, data.Attachments)

	return c.SendStatus(fiber.StatusAccepted)
}

func clearDraft(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId := c.QueryInt("channel", 0)
	threadId := c.QueryInt("thread", 0)

	if channelId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "channel is required")
	}

	if err := services.ClearDraft(user, uint(channelId), uint(threadId)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
