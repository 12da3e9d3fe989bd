package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listChannelMembers(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count, err := services.CountChannelMember(channel.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	members, err := services.ListChannelMember(channel.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  members,
	})
}

func addChannelMember(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		AccountID uint `json:"account_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 50 {
		return fiber.NewError(fiber.StatusForbidden, "you don't have permission to invite members")
	}

	target, err := services.GetAccount(data.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.AddChannelMember(target, channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func removeChannelMember(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		AccountID uint `json:"account_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 50 && data.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "you don't have permission to kick members")
	}

	target, err := services.GetAccount(data.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	membership, err := services.GetChannelMember(target, channel.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.RemoveChannelMember(membership, channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func editMyChannelMembership(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		Notify models.NotifyLevel `json:"notify"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	_, member, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	member.Notify = data.Notify
	member, err = services.EditChannelMember(member)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(member)
}
