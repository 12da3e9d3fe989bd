package services

import (
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	useTestDatabase(t)

	_, err := NewStudent(models.Student{
		Name:  "Linh Tran",
		Email: "linh.tran@example.com",
	})
	require.NoError(t, err)

	_, err = NewStudent(models.Student{
		Name:  "Someone Else",
		Email: "Linh.Tran@Example.COM",
	})
	require.Error(t, err)

	students, err := ListStudent(100, 0)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestEditStudentAllowsKeepingOwnEmail(t *testing.T) {
	useTestDatabase(t)

	student, err := NewStudent(models.Student{
		Name:  "Minh Pham",
		Email: "minh@example.com",
	})
	require.NoError(t, err)

	other, err := NewStudent(models.Student{
		Name:  "Anh Le",
		Email: "anh@example.com",
	})
	require.NoError(t, err)

	// Re-saving with the same email must not trip the uniqueness check.
	student.Notes = "prefers evening classes"
	student, err = EditStudent(student)
	require.NoError(t, err)
	assert.Equal(t, "prefers evening classes", student.Notes)

	// Taking another student's email must.
	other.Email = "MINH@example.com"
	_, err = EditStudent(other)
	require.Error(t, err)
}

func TestPaymentsKeepStudentNameAfterRename(t *testing.T) {
	useTestDatabase(t)

	student, err := NewStudent(models.Student{
		Name:  "Thao Nguyen",
		Email: "thao@example.com",
	})
	require.NoError(t, err)

	payment, err := NewPayment(models.Payment{
		StudentID: student.ID,
		Amount:    350,
		Currency:  "EUR",
		Method:    "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thao Nguyen", payment.StudentName)

	student.Name = "Thao Pham"
	_, err = EditStudent(student)
	require.NoError(t, err)

	stored, err := GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thao Nguyen", stored.StudentName)
}
