package domain

import (
	"context"
	"time"
)

// BehaviorNote is a free-form note a teacher attaches to a santri for one
// period (catatan_perilaku). Only the authoring teacher may edit or delete it.
type BehaviorNote struct {
	NoteID       int       `gorm:"primaryKey;autoIncrement" json:"note_id"`
	StudentID    int       `gorm:"not null;index" json:"student_id"`
	TeacherID    int       `gorm:"not null" json:"teacher_id"`
	AcademicYear int       `gorm:"not null" json:"academic_year"`
	Semester     Semester  `gorm:"type:semester_enum;not null" json:"semester"`
	NoteDate     time.Time `gorm:"not null" json:"note_date"`
	Category     string    `gorm:"type:varchar(100);not null" json:"category"`
	Description  string    `gorm:"type:text;not null" json:"description"`
}

type BehaviorNoteRequest struct {
	AcademicYear int    `json:"academic_year" valid:"required~Academic year is required"`
	Semester     string `json:"semester" valid:"required~Semester is required"`
	NoteDate     string `json:"note_date" valid:"required~Note date is required"`
	Category     string `json:"category" valid:"required~Category is required"`
	Description  string `json:"description" valid:"required~Description is required"`
}

type BehaviorRepo interface {
	Create(ctx context.Context, note *BehaviorNote) error
	ListByStudent(ctx context.Context, studentID int) ([]BehaviorNote, error)
	Update(ctx context.Context, noteID, teacherID int, category, description string) error
	Delete(ctx context.Context, noteID, teacherID int) error
	TeacherByAccount(ctx context.Context, accountID int) (*Teacher, error)
}

type BehaviorUseCase interface {
	Create(ctx context.Context, teacherAccountID, studentID int, req *BehaviorNoteRequest) error
	ListByStudent(ctx context.Context, studentID int) ([]BehaviorNote, error)
	Update(ctx context.Context, teacherAccountID, noteID int, category, description string) error
	Delete(ctx context.Context, teacherAccountID, noteID int) error
}
