package services

import (
	"testing"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentRejectsNonPositiveAmountBeforeWrite(t *testing.T) {
	useTestDatabase(t)

	student, err := NewStudent(models.Student{
		Name:  "Quang Vo",
		Email: "quang@example.com",
	})
	require.NoError(t, err)

	for _, amount := range []float64{0, -50} {
		_, err := NewPayment(models.Payment{
			StudentID: student.ID,
			Amount:    amount,
			Currency:  "EUR",
		})
		require.Error(t, err)
	}

	var count int64
	require.NoError(t, database.C.Model(&models.Payment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestNewPaymentRequiresExistingStudent(t *testing.T) {
	useTestDatabase(t)

	_, err := NewPayment(models.Payment{
		StudentID: 9999,
		Amount:    100,
		Currency:  "EUR",
	})
	require.Error(t, err)
}

func TestFinancialOverviewComparesCalendarMonths(t *testing.T) {
	useTestDatabase(t)

	student, err := NewStudent(models.Student{
		Name:  "Hanh Do",
		Email: "hanh@example.com",
	})
	require.NoError(t, err)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	seedLedger := func(amount float64, createdAt time.Time) {
		payment := models.Payment{
			BaseModel:   models.BaseModel{CreatedAt: createdAt},
			StudentID:   student.ID,
			StudentName: student.Name,
			Amount:      amount,
			Currency:    "EUR",
		}
		require.NoError(t, database.C.Create(&payment).Error)
	}

	seedLedger(100, monthStart.AddDate(0, -1, 0).Add(time.Hour))
	seedLedger(150, monthStart.Add(time.Hour))
	seedLedger(50, monthStart.Add(2*time.Hour))

	overview, err := GetFinancialOverview()
	require.NoError(t, err)

	assert.EqualValues(t, 3, overview.PaymentCount)
	assert.InDelta(t, 300, overview.TotalRevenue, 0.001)
	assert.InDelta(t, 200, overview.MonthRevenue, 0.001)
	assert.InDelta(t, 100, overview.PrevMonthRevenue, 0.001)
	assert.InDelta(t, 100, overview.GrowthPercent, 0.001)
}

func TestFinancialOverviewWithoutPriorMonthReportsZeroGrowth(t *testing.T) {
	useTestDatabase(t)

	student, err := NewStudent(models.Student{
		Name:  "Tuan Bui",
		Email: "tuan@example.com",
	})
	require.NoError(t, err)

	_, err = NewPayment(models.Payment{
		StudentID: student.ID,
		Amount:    80,
		Currency:  "EUR",
	})
	require.NoError(t, err)

	overview, err := GetFinancialOverview()
	require.NoError(t, err)

	assert.InDelta(t, 80, overview.MonthRevenue, 0.001)
	assert.Zero(t, overview.PrevMonthRevenue)
	assert.Zero(t, overview.GrowthPercent)
}
