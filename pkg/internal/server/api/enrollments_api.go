package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listEnrollment(c *fiber.Ctx) error {
	studentId := c.QueryInt("student", 0)

	enrollments, err := services.ListEnrollment(uint(studentId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(enrollments)
}

func createEnrollment(c *fiber.Ctx) error {
	var data struct {
		StudentID uint  `json:"student_id" validate:"required"`
		CourseID  uint  `json:"course_id" validate:"required"`
		ClassID   *uint `json:"class_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	enrollment, err := services.NewEnrollment(models.Enrollment{
		StudentID: data.StudentID,
		CourseID:  data.CourseID,
		ClassID:   data.ClassID,
		Status:    models.EnrollmentStatusActive,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(enrollment)
}

func editEnrollment(c *fiber.Ctx) error {
	enrollmentId, _ := c.ParamsInt("enrollmentId", 0)

	var data struct {
		Status models.EnrollmentStatus `json:"status"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	enrollment, err := services.GetEnrollment(uint(enrollmentId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	enrollment.Status = data.Status
	enrollment, err = services.EditEnrollment(enrollment)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(enrollment)
}
