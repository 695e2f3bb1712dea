package domain

import "context"

// Fixed grade component weights; they sum to 1.0.
const (
	WeightTask      = 0.30
	WeightMidterm   = 0.30
	WeightFinalExam = 0.40
)

// ComputeFinalScore derives the weighted final score from the three raw
// components. Absent components count as zero; the function never fails and
// must be re-run whenever any component changes.
func ComputeFinalScore(task, midterm, finalExam *float64) float64 {
	return WeightTask*deref(task) + WeightMidterm*deref(midterm) + WeightFinalExam*deref(finalExam)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// GradeRecord holds one santri's scores for a subject in one period (nilai).
// The (student, subject, year, semester) key is unique; resubmission
// overwrites.
type GradeRecord struct {
	GradeID        int      `gorm:"primaryKey;autoIncrement" json:"grade_id"`
	StudentID      int      `gorm:"not null;uniqueIndex:idx_grade_key" json:"student_id"`
	SubjectID      int      `gorm:"not null;uniqueIndex:idx_grade_key" json:"subject_id"`
	TeacherID      int      `gorm:"not null" json:"teacher_id"`
	AcademicYear   int      `gorm:"not null;uniqueIndex:idx_grade_key" json:"academic_year"`
	Semester       Semester `gorm:"type:semester_enum;not null;uniqueIndex:idx_grade_key" json:"semester"`
	TaskScore      *float64 `json:"task_score,omitempty"`
	MidtermScore   *float64 `json:"midterm_score,omitempty"`
	FinalExamScore *float64 `json:"final_exam_score,omitempty"`
	FinalScore     float64  `gorm:"not null" json:"final_score"`
	Commentary     string   `gorm:"type:text" json:"commentary"`
}

type GradeSubmission struct {
	StudentID      int      `json:"student_id" valid:"required~Student ID is required"`
	SubjectID      int      `json:"subject_id" valid:"required~Subject ID is required"`
	AcademicYear   int      `json:"academic_year" valid:"required~Academic year is required"`
	Semester       string   `json:"semester" valid:"required~Semester is required"`
	TaskScore      *float64 `json:"task_score"`
	MidtermScore   *float64 `json:"midterm_score"`
	FinalExamScore *float64 `json:"final_exam_score"`
	Commentary     string   `json:"commentary"`
}

type GradeRepo interface {
	TeacherByAccount(ctx context.Context, accountID int) (*Teacher, error)
	HasAssignmentFor(ctx context.Context, teacherID, subjectID, studentID, academicYear int) (bool, error)
	Upsert(ctx context.Context, record *GradeRecord) error
}

type GradeUseCase interface {
	Submit(ctx context.Context, teacherAccountID int, sub *GradeSubmission) error
}
