package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listTask(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tasks, err := services.ListTask(channel)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(tasks)
}

func createTask(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		MessageID  uint   `json:"message_id" validate:"required"`
		Title      string `json:"title" validate:"max=256"`
		AssigneeID *uint  `json:"assignee_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, _, err := services.GetChannelIdentity(uint(channelId), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessage(channel, data.MessageID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	task, err := services.PromoteMessageToTask(channel, message, data.Title, data.AssigneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(task)
}

func completeTask(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	taskId, _ := c.ParamsInt("taskId", 0)

	task, err := services.GetTask(uint(taskId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, _, err := services.GetChannelIdentity(task.ChannelID, user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	task, err = services.CompleteTask(task)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(task)
}

func deleteTask(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	taskId, _ := c.ParamsInt("taskId", 0)

	task, err := services.GetTask(uint(taskId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, _, err := services.GetChannelIdentity(task.ChannelID, user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if err := services.DeleteTask(task); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
