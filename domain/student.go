package domain

import (
	"context"
	"time"
)

// Student is the santri row. AccountID stays nil until an admin verifies the
// registration and credentials are generated.
type Student struct {
	StudentID    int       `gorm:"primaryKey;autoIncrement" json:"student_id"`
	AccountID    *int      `gorm:"unique" json:"account_id,omitempty"`
	GuardianID   int       `gorm:"not null" json:"guardian_id"`
	Guardian     Account   `gorm:"foreignKey:GuardianID;references:AccountID" json:"-"`
	FullName     string    `gorm:"type:varchar(150);not null" json:"full_name" valid:"required~Full name is required"`
	NISN         *string   `gorm:"type:varchar(20);unique" json:"nisn,omitempty"`
	BirthDate    time.Time `gorm:"not null" json:"birth_date"`
	Gender       string    `gorm:"type:gender_enum;not null" json:"gender" valid:"required~Gender is required,in(male|female)~Invalid gender"`
	Address      string    `gorm:"type:varchar(255)" json:"address"`
	PhotoURL     *string   `gorm:"type:varchar(255)" json:"photo_url,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

// GuardianLink records the stated relationship between a guardian account and
// a santri (orang_tua).
type GuardianLink struct {
	GuardianLinkID int    `gorm:"primaryKey;autoIncrement" json:"guardian_link_id"`
	AccountID      int    `gorm:"not null" json:"account_id"`
	StudentID      int    `gorm:"not null" json:"student_id"`
	Relationship   string `gorm:"type:varchar(50);not null" json:"relationship"`
}

// MemorizationProgress tracks Quran memorization per santri (progres_hafalan).
type MemorizationProgress struct {
	ProgressID int       `gorm:"primaryKey;autoIncrement" json:"progress_id"`
	StudentID  int       `gorm:"not null;index" json:"student_id"`
	TeacherID  int       `gorm:"not null" json:"teacher_id"`
	Surah      string    `gorm:"type:varchar(100);not null" json:"surah" valid:"required~Surah is required"`
	FromAyah   int       `gorm:"not null" json:"from_ayah"`
	ToAyah     int       `gorm:"not null" json:"to_ayah"`
	RecordedAt time.Time `gorm:"autoCreateTime" json:"recorded_at"`
}

// Payment rows exist so the santri delete cascade covers them (pembayaran).
type Payment struct {
	PaymentID int       `gorm:"primaryKey;autoIncrement" json:"payment_id"`
	StudentID int       `gorm:"not null;index" json:"student_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Purpose   string    `gorm:"type:varchar(150)" json:"purpose"`
	PaidAt    time.Time `json:"paid_at"`
}

type PendingRegistration struct {
	StudentID     int       `json:"student_id"`
	StudentName   string    `json:"student_name"`
	GuardianName  string    `json:"guardian_name"`
	GuardianEmail *string   `json:"guardian_email,omitempty"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// VerifiedCredentials is what registration verification hands back to the
// admin and forwards to the guardian.
type VerifiedCredentials struct {
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

type StudentSummary struct {
	StudentID    int     `json:"student_id"`
	FullName     string  `json:"full_name"`
	NISN         *string `json:"nisn,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	GuardianName *string `json:"guardian_name,omitempty"`
}

// GroupedStudents nests active santri by level name, then class name. Santri
// without a placement for the year land under the "unassigned" class bucket
// of the "Unplaced" level.
type GroupedStudents map[string]map[string][]StudentSummary

type BiodataUpdate struct {
	FullName  *string `json:"full_name"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender"`
	Address   *string `json:"address"`
}

type StudentRepo interface {
	Biodata(ctx context.Context, studentID int) (*Student, error)
	UpdateBiodata(ctx context.Context, studentID int, fields map[string]interface{}) error
	PendingRegistrations(ctx context.Context) ([]PendingRegistration, error)
	Verify(ctx context.Context, studentID int) (*VerifiedCredentials, error)
	ListGrouped(ctx context.Context, academicYear int) (GroupedStudents, error)
	UpdateNISN(ctx context.Context, studentID int, nisn string) error
	Delete(ctx context.Context, studentID int) error
	RecordProgress(ctx context.Context, teacherAccountID int, progress *MemorizationProgress) error
	ProgressByStudent(ctx context.Context, studentID int) ([]MemorizationProgress, error)
}

type StudentUseCase interface {
	Biodata(ctx context.Context, studentID int) (*Student, error)
	UpdateBiodata(ctx context.Context, studentID int, upd *BiodataUpdate) error
	PendingRegistrations(ctx context.Context) ([]PendingRegistration, error)
	Verify(ctx context.Context, studentID int) (*VerifiedCredentials, error)
	ListGrouped(ctx context.Context, academicYear int) (GroupedStudents, error)
	UpdateNISN(ctx context.Context, studentID int, nisn string) error
	Delete(ctx context.Context, studentID int) error
	RecordProgress(ctx context.Context, teacherAccountID int, progress *MemorizationProgress) error
	ProgressByStudent(ctx context.Context, studentID int) ([]MemorizationProgress, error)
}
