package server

import (
	"strings"

	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func authMiddleware(c *fiber.Ctx) error {
	token := retrieveToken(c)
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization token")
	}

	accountId, err := services.DecodeJwt(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	account, err := services.GetAccount(accountId)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "account was not found")
	}

	c.Locals("principal", account)

	return c.Next()
}

func retrieveToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if val := c.Cookies("authorization"); len(val) > 0 {
		return val
	}
	return c.Query("tk")
}
