package api

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/server/exts"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listPayment(c *fiber.Ctx) error {
	studentId := c.QueryInt("student", 0)
	take := c.QueryInt("take", 0)
	offset := c.QueryInt("offset", 0)

	payments, err := services.ListPayment(uint(studentId), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(payments)
}

func createPayment(c *fiber.Ctx) error {
	var data struct {
		StudentID uint    `json:"student_id" validate:"required"`
		CourseID  *uint   `json:"course_id"`
		Amount    float64 `json:"amount" validate:"required,gt=0"`
		Currency  string  `json:"currency" validate:"required,len=3"`
		Method    string  `json:"method" validate:"max=32"`
		Notes     string  `json:"notes" validate:"max=1024"`
	}

	// Validation rejects a zero or negative amount before any write happens.
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	payment, err := services.NewPayment(models.Payment{
		StudentID: data.StudentID,
		CourseID:  data.CourseID,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Method:    data.Method,
		Notes:     data.Notes,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(payment)
}

func deletePayment(c *fiber.Ctx) error {
	paymentId, _ := c.ParamsInt("paymentId", 0)

	payment, err := services.GetPayment(uint(paymentId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeletePayment(payment); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func getFinancialOverview(c *fiber.Ctx) error {
	overview, err := services.GetFinancialOverview()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(overview)
}
