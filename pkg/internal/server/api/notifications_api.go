package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listNotification(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	onlyUnread := c.QueryBool("unread", false)

	notifications, err := services.ListNotification(user, onlyUnread)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(notifications)
}

func markNotificationRead(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var data struct {
		IDs []uint `json:"ids" validate:"required,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.MarkNotificationRead(user, data.IDs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
