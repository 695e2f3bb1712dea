package domain

import (
	"context"
	"fmt"
	"strings"
)

// PromotionStatus is the year-end outcome on a class placement. Only the
// first three values may be written; undetermined is the read-side default.
type PromotionStatus string

const (
	PromotionPromoted     PromotionStatus = "promoted"
	PromotionRetained     PromotionStatus = "retained"
	PromotionGraduated    PromotionStatus = "graduated"
	PromotionUndetermined PromotionStatus = "undetermined"
)

func ParsePromotionStatus(s string) (PromotionStatus, error) {
	switch PromotionStatus(strings.ToLower(s)) {
	case PromotionPromoted:
		return PromotionPromoted, nil
	case PromotionRetained:
		return PromotionRetained, nil
	case PromotionGraduated:
		return PromotionGraduated, nil
	}
	return "", fmt.Errorf("unknown promotion status %q: %w", s, ErrValidation)
}

// Level groups classes into an education tier (jenjang).
type Level struct {
	LevelID int    `gorm:"primaryKey;autoIncrement" json:"level_id"`
	Name    string `gorm:"type:varchar(100);not null;unique" json:"name" valid:"required~Level name is required"`
}

type Subject struct {
	SubjectID   int     `gorm:"primaryKey;autoIncrement" json:"subject_id"`
	Name        string  `gorm:"type:varchar(150);not null;unique" json:"name" valid:"required~Subject name is required"`
	Category    *string `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description string  `gorm:"type:varchar(255)" json:"description"`
}

// Curriculum ties a subject into a level's syllabus.
type Curriculum struct {
	CurriculumID int `gorm:"primaryKey;autoIncrement" json:"curriculum_id"`
	SubjectID    int `gorm:"not null;uniqueIndex:idx_curriculum_subject_level" json:"subject_id"`
	LevelID      int `gorm:"not null;uniqueIndex:idx_curriculum_subject_level" json:"level_id"`
}

type Class struct {
	ClassID           int    `gorm:"primaryKey;autoIncrement" json:"class_id"`
	Name              string `gorm:"type:varchar(100);not null;unique" json:"name" valid:"required~Class name is required"`
	LevelID           int    `gorm:"not null" json:"level_id"`
	Level             Level  `gorm:"foreignKey:LevelID;references:LevelID" json:"-"`
	HomeroomTeacherID *int   `json:"homeroom_teacher_id,omitempty"`
}

// ClassPlacement is the (student, academic year) membership row; re-placing a
// santri in the same year overwrites the class, never duplicates the row.
type ClassPlacement struct {
	PlacementID  int             `gorm:"primaryKey;autoIncrement" json:"placement_id"`
	StudentID    int             `gorm:"not null;uniqueIndex:idx_placement_student_year" json:"student_id"`
	ClassID      int             `gorm:"not null" json:"class_id"`
	AcademicYear int             `gorm:"not null;uniqueIndex:idx_placement_student_year" json:"academic_year"`
	Promotion    PromotionStatus `gorm:"type:promotion_enum;not null;default:undetermined" json:"promotion"`
}

// TeachingAssignment records who may submit grades for a subject in a class
// during an academic year (jadwal_mengajar).
type TeachingAssignment struct {
	AssignmentID int `gorm:"primaryKey;autoIncrement" json:"assignment_id"`
	TeacherID    int `gorm:"not null;uniqueIndex:idx_assignment_tuple" json:"teacher_id"`
	SubjectID    int `gorm:"not null;uniqueIndex:idx_assignment_tuple" json:"subject_id"`
	ClassID      int `gorm:"not null;uniqueIndex:idx_assignment_tuple" json:"class_id"`
	AcademicYear int `gorm:"not null;uniqueIndex:idx_assignment_tuple" json:"academic_year"`
}

type AssignmentDetail struct {
	AssignmentID int    `json:"assignment_id"`
	AcademicYear int    `json:"academic_year"`
	ClassName    string `json:"class_name"`
	SubjectName  string `json:"subject_name"`
	TeacherName  string `json:"teacher_name"`
}

type SubjectRepo interface {
	Create(ctx context.Context, subject *Subject) error
	List(ctx context.Context) ([]Subject, error)
	Delete(ctx context.Context, subjectID int) error
	AddToLevel(ctx context.Context, subjectID, levelID int) error
	CreateAssignment(ctx context.Context, assignment *TeachingAssignment) error
	ListAssignments(ctx context.Context) ([]AssignmentDetail, error)
	UpdateAssignmentTeacher(ctx context.Context, assignmentID, newTeacherID int) error
	DeleteAssignment(ctx context.Context, assignmentID int) error
}

type SubjectUseCase interface {
	Create(ctx context.Context, subject *Subject) error
	List(ctx context.Context) ([]Subject, error)
	Delete(ctx context.Context, subjectID int) error
	AddToLevel(ctx context.Context, subjectID, levelID int) error
	CreateAssignment(ctx context.Context, assignment *TeachingAssignment) error
	ListAssignments(ctx context.Context) ([]AssignmentDetail, error)
	UpdateAssignmentTeacher(ctx context.Context, assignmentID, newTeacherID int) error
	DeleteAssignment(ctx context.Context, assignmentID int) error
}

type ClassRepo interface {
	Create(ctx context.Context, class *Class) error
	Delete(ctx context.Context, classID int) error
	AssignHomeroom(ctx context.Context, classID, teacherID int) error
	UnassignHomeroom(ctx context.Context, classID int) error
	PlaceStudent(ctx context.Context, classID, studentID, academicYear int) error
	RemovePlacement(ctx context.Context, classID, studentID, academicYear int) error
	SetPromotion(ctx context.Context, studentID, classID, academicYear int, status PromotionStatus) error
	StudentsInClass(ctx context.Context, classID, academicYear int) ([]StudentSummary, error)
}

type ClassUseCase interface {
	Create(ctx context.Context, class *Class) error
	Delete(ctx context.Context, classID int) error
	AssignHomeroom(ctx context.Context, classID, teacherID int) error
	UnassignHomeroom(ctx context.Context, classID int) error
	PlaceStudent(ctx context.Context, classID, studentID, academicYear int) error
	RemovePlacement(ctx context.Context, classID, studentID, academicYear int) error
	SetPromotion(ctx context.Context, studentID, classID, academicYear int, status PromotionStatus) error
	StudentsInClass(ctx context.Context, classID, academicYear int) ([]StudentSummary, error)
}
