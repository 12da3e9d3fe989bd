package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	channels, err := services.ListChannel(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(channels)
}

func listOwnedChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	channels, err := services.ListOwnedChannel(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(channels)
}

func getChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(channel)
}

func createChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var data struct {
		Name        string             `json:"name" validate:"required,max=64"`
		Description string             `json:"description" validate:"max=512"`
		Type        models.ChannelType `json:"type"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, err := services.NewChannel(models.Channel{
		Name:        data.Name,
		Description: data.Description,
		Type:        data.Type,
		AccountID:   user.ID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func editChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		Name        string             `json:"name" validate:"required,max=64"`
		Description string             `json:"description" validate:"max=512"`
		Type        models.ChannelType `json:"type"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 50 {
		return fiber.NewError(fiber.StatusForbidden, "you don't have permission to edit this channel")
	}

	channel, err = services.EditChannel(channel, data.Name, data.Description, data.Type)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func archiveChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		IsArchived bool `json:"is_archived"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 50 {
		return fiber.NewError(fiber.StatusForbidden, "you don't have permission to archive this channel")
	}

	channel, err = services.ArchiveChannel(channel, data.IsArchived)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func deleteChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	channel, err := services.GetChannel(uint(channelId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if channel.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "only the channel creator can delete it")
	}

	if err := services.DeleteChannel(channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
