package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listStudent(c *fiber.Ctx) error {
	take := c.QueryInt("take", 0)
	offset := c.QueryInt("offset", 0)

	students, err := services.ListStudent(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(students)
}

func getStudent(c *fiber.Ctx) error {
	studentId, _ := c.ParamsInt("studentId", 0)

	student, err := services.GetStudent(uint(studentId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(student)
}

func createStudent(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,max=128"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"max=32"`
		Location string `json:"location" validate:"max=128"`
		Notes    string `json:"notes" validate:"max=2048"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	student, err := services.NewStudent(models.Student{
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Location: data.Location,
		Notes:    data.Notes,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(student)
}

func editStudent(c *fiber.Ctx) error {
	studentId, _ := c.ParamsInt("studentId", 0)

	var data struct {
		Name     string `json:"name" validate:"required,max=128"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"max=32"`
		Location string `json:"location" validate:"max=128"`
		Notes    string `json:"notes" validate:"max=2048"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	student, err := services.GetStudent(uint(studentId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	student.Name = data.Name
	student.Email = data.Email
	student.Phone = data.Phone
	student.Location = data.Location
	student.Notes = data.Notes

	student, err = services.EditStudent(student)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(student)
}

func deleteStudent(c *fiber.Ctx) error {
	studentId, _ := c.ParamsInt("studentId", 0)

	student, err := services.GetStudent(uint(studentId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteStudent(student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
