package domain

import (
	"context"
	"time"
)

type TeacherPosition string

const (
	PositionSubjectTeacher TeacherPosition = "subject_teacher"
	PositionHomeroom       TeacherPosition = "homeroom"
)

// Teacher is the guru row; credentials live on the linked Account.
type Teacher struct {
	TeacherID     int             `gorm:"primaryKey;autoIncrement" json:"teacher_id"`
	AccountID     int             `gorm:"not null;unique" json:"account_id"`
	Account       Account         `gorm:"foreignKey:AccountID;references:AccountID" json:"-"`
	BirthPlace    string          `gorm:"type:varchar(100)" json:"birth_place"`
	BirthDate     time.Time       `json:"birth_date"`
	Address       string          `gorm:"type:varchar(255)" json:"address"`
	TeachingSince int             `json:"teaching_since"`
	HighestDegree string          `gorm:"type:varchar(100)" json:"highest_degree"`
	Position      TeacherPosition `gorm:"type:position_enum;not null;default:subject_teacher" json:"position"`
}

type TeacherRequest struct {
	FullName      string `json:"full_name" valid:"required~Full name is required"`
	Username      string `json:"username" valid:"required~Username is required"`
	Email         string `json:"email" valid:"required~Email is required,email~Invalid email"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date" valid:"required~Birth date is required"`
	Address       string `json:"address"`
	TeachingSince int    `json:"teaching_since"`
	HighestDegree string `json:"highest_degree"`
}

type TeacherDetail struct {
	TeacherID     int             `json:"teacher_id"`
	AccountID     int             `json:"account_id"`
	FullName      string          `json:"full_name"`
	Username      string          `json:"username"`
	Email         *string         `json:"email,omitempty"`
	BirthPlace    string          `json:"birth_place"`
	BirthDate     time.Time       `json:"birth_date"`
	Address       string          `json:"address"`
	TeachingSince int             `json:"teaching_since"`
	HighestDegree string          `json:"highest_degree"`
	Position      TeacherPosition `json:"position"`
}

type CreatedTeacher struct {
	TeacherID int    `json:"teacher_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// HomeroomEntry lists a class together with its homeroom teacher, if any.
type HomeroomEntry struct {
	ClassID     int     `json:"class_id"`
	ClassName   string  `json:"class_name"`
	LevelName   string  `json:"level_name"`
	TeacherID   *int    `json:"teacher_id,omitempty"`
	TeacherName *string `json:"teacher_name,omitempty"`
}

type TeacherRepo interface {
	Create(ctx context.Context, req *TeacherRequest) (*CreatedTeacher, error)
	List(ctx context.Context) ([]TeacherDetail, error)
	Update(ctx context.Context, teacherID int, req *TeacherRequest) error
	Delete(ctx context.Context, teacherID int) error
	ProfileByAccount(ctx context.Context, accountID int) (*TeacherDetail, error)
	HomeroomList(ctx context.Context) (map[string][]HomeroomEntry, error)
}

type TeacherUseCase interface {
	Create(ctx context.Context, req *TeacherRequest) (*CreatedTeacher, error)
	List(ctx context.Context) ([]TeacherDetail, error)
	Update(ctx context.Context, teacherID int, req *TeacherRequest) error
	Delete(ctx context.Context, teacherID int) error
	ProfileByAccount(ctx context.Context, accountID int) (*TeacherDetail, error)
	HomeroomList(ctx context.Context) (map[string][]HomeroomEntry, error)
}
