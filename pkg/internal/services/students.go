package services

import (
	"fmt"
	"strings"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
)

// checkStudentEmailTaken enforces case-insensitive email uniqueness at the
// application level; excludeId skips the record being edited.
func checkStudentEmailTaken(email string, excludeId uint) error {
	var count int64
	tx := database.C.Model(&models.Student{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeId > 0 {
		tx = tx.Where("id != ?", excludeId)
	}
	if err := tx.Count(&count).Error; err != nil {
		return err
	} else if count > 0 {
		return fmt.Errorf("a student with email %s already exists", email)
	}
	return nil
}

func ListStudent(take int, offset int) ([]models.Student, error) {
	if take <= 0 || take > 100 {
		take = 100
	}

	var students []models.Student
	if err := database.C.
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&students).Error; err != nil {
		return students, err
	}

	return students, nil
}

func GetStudent(id uint) (models.Student, error) {
	var student models.Student
	if err := database.C.Where(models.Student{
		BaseModel: models.BaseModel{ID: id},
	}).Preload("Enrollments").Preload("Payments").First(&student).Error; err != nil {
		return student, err
	}
	return student, nil
}

func NewStudent(student models.Student) (models.Student, error) {
	if err := checkStudentEmailTaken(student.Email, 0); err != nil {
		return student, err
	}

	student.Email = strings.TrimSpace(student.Email)
	if err := database.C.Save(&student).Error; err != nil {
		return student, err
	}

	return student, nil
}

func EditStudent(student models.Student) (models.Student, error) {
	if err := checkStudentEmailTaken(student.Email, student.ID); err != nil {
		return student, err
	}

	if err := database.C.Save(&student).Error; err != nil {
		return student, err
	}

	return student, nil
}

func DeleteStudent(student models.Student) error {
	return database.C.Delete(&student).Error
}
