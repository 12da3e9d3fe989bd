package services

import (
	"fmt"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
)

func ListPayment(studentId uint, take int, offset int) ([]models.Payment, error) {
	if take <= 0 || take > 100 {
		take = 100
	}

	tx := database.C.Limit(take).Offset(offset).Order("created_at DESC")
	if studentId > 0 {
		tx = tx.Where("student_id = ?", studentId)
	}

	var payments []models.Payment
	if err := tx.Find(&payments).Error; err != nil {
		return payments, err
	}

	return payments, nil
}

func GetPayment(id uint) (models.Payment, error) {
	var payment models.Payment
	if err := database.C.Where(models.Payment{
		BaseModel: models.BaseModel{ID: id},
	}).First(&payment).Error; err != nil {
		return payment, err
	}
	return payment, nil
}

// NewPayment validates the amount before anything touches the database and
// copies the student's name onto the record at write time.
func NewPayment(payment models.Payment) (models.Payment, error) {
	if payment.Amount <= 0 {
		return payment, fmt.Errorf("payment amount must be greater than zero")
	}

	student, err := GetStudent(payment.StudentID)
	if err != nil {
		return payment, fmt.Errorf("student was not found: %v", err)
	}
	payment.StudentName = student.Name

	if payment.CourseID != nil {
		if _, err := GetCourse(*payment.CourseID); err != nil {
			return payment, fmt.Errorf("course was not found: %v", err)
		}
	}

	if err := database.C.Save(&payment).Error; err != nil {
		return payment, err
	}

	return payment, nil
}

func DeletePayment(payment models.Payment) error {
	return database.C.Delete(&payment).Error
}

// GetFinancialOverview aggregates the ledger. Growth compares the current
// calendar month against the previous one; no placeholder statistics.
func GetFinancialOverview() (models.FinancialOverview, error) {
	var overview models.FinancialOverview

	if err := database.C.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.TotalRevenue).Error; err != nil {
		return overview, err
	}
	if err := database.C.Model(&models.Payment{}).
		Count(&overview.PaymentCount).Error; err != nil {
		return overview, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	if err := database.C.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ?", monthStart).
		Scan(&overview.MonthRevenue).Error; err != nil {
		return overview, err
	}
	if err := database.C.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).
		Scan(&overview.PrevMonthRevenue).Error; err != nil {
		return overview, err
	}

	if overview.PrevMonthRevenue > 0 {
		overview.GrowthPercent = (overview.MonthRevenue - overview.PrevMonthRevenue) / overview.PrevMonthRevenue * 100
	}

	return overview, nil
}
