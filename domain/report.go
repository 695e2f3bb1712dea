package domain

import (
	"context"
	"time"
)

// Predicate maps a score onto its report letter. Thresholds are inclusive
// lower bounds checked top-down; a missing score reads as "-".
func Predicate(score *float64) string {
	if score == nil {
		return "-"
	}
	switch {
	case *score >= 90:
		return "A"
	case *score >= 80:
		return "B"
	case *score >= 70:
		return "C"
	default:
		return "D"
	}
}

// DefaultCategory labels report sections for subjects without a category.
const DefaultCategory = "Other"

// DefaultCommentary fills in for grade rows whose teacher left no note.
const DefaultCommentary = "No commentary provided."

// SubjectGradeRow is one fetched grade row joined with its subject.
type SubjectGradeRow struct {
	SubjectName string   `json:"subject"`
	Category    *string  `json:"-"`
	FinalScore  *float64 `json:"final_score"`
	Commentary  *string  `json:"-"`
}

type SubjectGradeView struct {
	Subject    string   `json:"subject"`
	FinalScore *float64 `json:"final_score"`
	Predicate  string   `json:"predicate"`
	Commentary string   `json:"commentary"`
}

type AttendanceRecap struct {
	Sick      int `json:"sick"`
	Permit    int `json:"permit"`
	Unexcused int `json:"unexcused"`
}

type BehaviorNoteView struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	NoteDate    time.Time `json:"note_date"`
}

type ReportSummary struct {
	TotalScore       float64         `json:"total_score"`
	Average          float64         `json:"average"`
	OverallPredicate string          `json:"overall_predicate"`
	PromotionStatus  PromotionStatus `json:"promotion_status"`
}

type NonAcademic struct {
	AttendanceBuckets AttendanceRecap    `json:"attendance_buckets"`
	BehaviorNotes     []BehaviorNoteView `json:"behavior_notes"`
}

// ReportCard is the derived report document for one (student, year, semester).
// It is assembled on demand, never persisted.
type ReportCard struct {
	Summary          ReportSummary                 `json:"summary"`
	GradesByCategory map[string][]SubjectGradeView `json:"grades_by_category"`
	NonAcademic      NonAcademic                   `json:"non_academic"`
}

type ClassReportEntry struct {
	StudentID   int        `json:"student_id"`
	StudentName string     `json:"student_name"`
	Report      ReportCard `json:"report"`
}

type ReportRepo interface {
	GradesForPeriod(ctx context.Context, studentID, academicYear int, semester Semester) ([]SubjectGradeRow, error)
	AttendanceTally(ctx context.Context, studentID, academicYear int, semester Semester) (AttendanceRecap, error)
	BehaviorNotesForPeriod(ctx context.Context, studentID, academicYear int, semester Semester) ([]BehaviorNoteView, error)
	PromotionOutcome(ctx context.Context, studentID, academicYear int) (PromotionStatus, error)
	StudentsInClass(ctx context.Context, classID, academicYear int) ([]StudentSummary, error)
}

type ReportUseCase interface {
	StudentReport(ctx context.Context, studentID, academicYear int, semester Semester) (*ReportCard, error)
	ClassReport(ctx context.Context, classID, academicYear int, semester Semester) ([]ClassReportEntry, error)
}
