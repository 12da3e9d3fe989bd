package services

import (
	"errors"
	"fmt"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"gorm.io/gorm"
)

func ListCourse(includeArchived bool) ([]models.Course, error) {
	tx := database.C.Order("created_at DESC")
	if !includeArchived {
		tx = tx.Where("is_archived = ?", false)
	}

	var courses []models.Course
	if err := tx.Find(&courses).Error; err != nil {
		return courses, err
	}

	return courses, nil
}

func GetCourse(id uint) (models.Course, error) {
	var course models.Course
	if err := database.C.Where(models.Course{
		BaseModel: models.BaseModel{ID: id},
	}).First(&course).Error; err != nil {
		return course, err
	}
	return course, nil
}

func NewCourse(course models.Course) (models.Course, error) {
	err := database.C.Save(&course).Error
	return course, err
}

func EditCourse(course models.Course) (models.Course, error) {
	err := database.C.Save(&course).Error
	return course, err
}

func DeleteCourse(course models.Course) error {
	return database.C.Delete(&course).Error
}

func ListClass() ([]models.Class, error) {
	var classes []models.Class
	if err := database.C.
		Preload("Students").Preload("Students.Student").
		Order("created_at DESC").
		Find(&classes).Error; err != nil {
		return classes, err
	}
	return classes, nil
}

func GetClass(id uint) (models.Class, error) {
	var class models.Class
	if err := database.C.Where(models.Class{
		BaseModel: models.BaseModel{ID: id},
	}).Preload("Students").Preload("Students.Student").First(&class).Error; err != nil {
		return class, err
	}
	return class, nil
}

func NewClass(class models.Class) (models.Class, error) {
	err := database.C.Save(&class).Error
	return class, err
}

// AddClassStudent links a student to a class after application-level
// existence checks; there is no database-enforced referential integrity
// beyond the identity index.
func AddClassStudent(class models.Class, studentId uint) (models.ClassStudent, error) {
	var link models.ClassStudent

	if _, err := GetStudent(studentId); err != nil {
		return link, fmt.Errorf("student was not found: %v", err)
	}

	if err := database.C.Where(models.ClassStudent{
		ClassID:   class.ID,
		StudentID: studentId,
	}).First(&link).Error; err == nil {
		return link, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return link, err
	}

	link = models.ClassStudent{
		ClassID:   class.ID,
		StudentID: studentId,
	}
	if err := database.C.Save(&link).Error; err != nil {
		return link, err
	}

	return link, nil
}

func RemoveClassStudent(class models.Class, studentId uint) error {
	return database.C.Unscoped().
		Where("class_id = ? AND student_id = ?", class.ID, studentId).
		Delete(&models.ClassStudent{}).Error
}

func ListEnrollment(studentId uint) ([]models.Enrollment, error) {
	tx := database.C.Preload("Student").Preload("Course").Order("created_at DESC")
	if studentId > 0 {
		tx = tx.Where("student_id = ?", studentId)
	}

	var enrollments []models.Enrollment
	if err := tx.Find(&enrollments).Error; err != nil {
		return enrollments, err
	}

	return enrollments, nil
}

func GetEnrollment(id uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := database.C.Where(models.Enrollment{
		BaseModel: models.BaseModel{ID: id},
	}).Preload("Student").Preload("Course").First(&enrollment).Error; err != nil {
		return enrollment, err
	}
	return enrollment, nil
}

func NewEnrollment(enrollment models.Enrollment) (models.Enrollment, error) {
	if _, err := GetStudent(enrollment.StudentID); err != nil {
		return enrollment, fmt.Errorf("student was not found: %v", err)
	}
	if _, err := GetCourse(enrollment.CourseID); err != nil {
		return enrollment, fmt.Errorf("course was not found: %v", err)
	}

	if err := database.C.Save(&enrollment).Error; err != nil {
		return enrollment, err
	}

	return enrollment, nil
}

func EditEnrollment(enrollment models.Enrollment) (models.Enrollment, error) {
	err := database.C.Save(&enrollment).Error
	return enrollment, err
}
