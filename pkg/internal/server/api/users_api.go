package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getUserinfo(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	return c.JSON(user)
}

func getOthersInfo(c *fiber.Ctx) error {
	accountId, _ := c.ParamsInt("accountId", 0)

	account, err := services.GetAccount(uint(accountId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(account)
}
