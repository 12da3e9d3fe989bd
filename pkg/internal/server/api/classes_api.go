package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listClass(c *fiber.Ctx) error {
	classes, err := services.ListClass()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(classes)
}

func createClass(c *fiber.Ctx) error {
	var data struct {
		Name        string `json:"name" validate:"required,max=128"`
		Level       string `json:"level" validate:"max=16"`
		TeacherName string `json:"teacher_name" validate:"max=128"`
		ChannelID   *uint  `json:"channel_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	class, err := services.NewClass(models.Class{
		Name:        data.Name,
		Level:       data.Level,
		TeacherName: data.TeacherName,
		ChannelID:   data.ChannelID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(class)
}

func addClassStudent(c *fiber.Ctx) error {
	classId, _ := c.ParamsInt("classId", 0)

	var data struct {
		StudentID uint `json:"student_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	class, err := services.GetClass(uint(classId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	link, err := services.AddClassStudent(class, data.StudentID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(link)
}

func removeClassStudent(c *fiber.Ctx) error {
	classId, _ := c.ParamsInt("classId", 0)
	studentId, _ := c.ParamsInt("studentId", 0)

	class, err := services.GetClass(uint(classId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.RemoveClassStudent(class, uint(studentId)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
