package models

type Student struct {
	BaseModel

	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	Enrollments []Enrollment `json:"enrollments"`
	Payments    []Payment    `json:"payments"`
}

type Course struct {
	BaseModel

	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	IsArchived  bool   `json:"is_archived"`
}

type Class struct {
	BaseModel

	Name        string `json:"name"`
	Level       string `json:"level"`
	TeacherName string `json:"teacher_name"`
	ChannelID   *uint  `json:"channel_id"`

	Students []ClassStudent `json:"students"`
}

type ClassStudent struct {
	BaseModel

	ClassID   uint    `json:"class_id" gorm:"uniqueIndex:idx_class_students_identity"`
	StudentID uint    `json:"student_id" gorm:"uniqueIndex:idx_class_students_identity"`
	Student   Student `json:"student"`
}

type EnrollmentStatus = uint8

const (
	EnrollmentStatusActive = EnrollmentStatus(iota)
	EnrollmentStatusCompleted
	EnrollmentStatusArchived
)

type Enrollment struct {
	BaseModel

	StudentID uint             `json:"student_id"`
	CourseID  uint             `json:"course_id"`
	ClassID   *uint            `json:"class_id"`
	Status    EnrollmentStatus `json:"status"`

	Student Student `json:"student"`
	Course  Course  `json:"course"`
}

type Payment struct {
	BaseModel

	StudentID uint  `json:"student_id"`
	CourseID  *uint `json:"course_id"`

	// Copied from the student record at write time, kept stale on purpose.
	StudentName string `json:"student_name"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
	Notes    string  `json:"notes"`
}

type FinancialOverview struct {
	TotalRevenue     float64 `json:"total_revenue"`
	MonthRevenue     float64 `json:"month_revenue"`
	PrevMonthRevenue float64 `json:"prev_month_revenue"`
	GrowthPercent    float64 `json:"growth_percent"`
	PaymentCount     int64   `json:"payment_count"`
}
