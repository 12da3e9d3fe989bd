package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listCourse(c *fiber.Ctx) error {
	includeArchived := c.QueryBool("archived", false)

	courses, err := services.ListCourse(includeArchived)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(courses)
}

func getCourse(c *fiber.Ctx) error {
	courseId, _ := c.ParamsInt("courseId", 0)

	course, err := services.GetCourse(uint(courseId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(course)
}

func createCourse(c *fiber.Ctx) error {
	var data struct {
		Name        string `json:"name" validate:"required,max=128"`
		Level       string `json:"level" validate:"max=16"`
		Description string `json:"description" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	course, err := services.NewCourse(models.Course{
		Name:        data.Name,
		Level:       data.Level,
		Description: data.Description,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(course)
}

func editCourse(c *fiber.Ctx) error {
	courseId, _ := c.ParamsInt("courseId", 0)

	var data struct {
		Name        string `json:"name" validate:"required,max=128"`
		Level       string `json:"level" validate:"max=16"`
		Description string `json:"description" validate:"max=1024"`
		IsArchived  bool   `json:"is_archived"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	course, err := services.GetCourse(uint(courseId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	course.Name = data.Name
	course.Level = data.Level
	course.Description = data.Description
	course.IsArchived = data.IsArchived

	course, err = services.EditCourse(course)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(course)
}

func deleteCourse(c *fiber.Ctx) error {
	courseId, _ := c.ParamsInt("courseId", 0)

	course, err := services.GetCourse(uint(courseId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCourse(course); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
