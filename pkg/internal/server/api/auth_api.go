package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,min=3,max=32"`
		Nick     string `json:"nick" validate:"required,max=64"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Nick, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(account)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthAccount(data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	token, err := services.EncodeJwt(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}
