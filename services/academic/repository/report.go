package repository

import (
	"context"
	"errors"
	"hikmah/domain"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) domain.ReportRepo {
	return &reportRepository{
		db: db,
	}
}

func (rr *reportRepository) GradesForPeriod(ctx context.Context, studentID, academicYear int, semester domain.Semester) ([]domain.SubjectGradeRow, error) {
	var rows []domain.SubjectGradeRow
	err := rr.db.WithContext(ctx).
		Table("grade_records").
		Select(`subjects.name AS subject_name,
			subjects.category,
			grade_records.final_score,
			grade_records.commentary`).
		Joins("JOIN subjects ON subjects.subject_id = grade_records.subject_id").
		Where("grade_records.student_id = ?", studentID).
		Where("grade_records.academic_year = ?", academicYear).
		Where("grade_records.semester = ?", semester).
		Order("subjects.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type tallyRow struct {
	Status domain.AttendanceStatus
	Total  int
}

func (rr *reportRepository) AttendanceTally(ctx context.Context, studentID, academicYear int, semester domain.Semester) (domain.AttendanceRecap, error) {
	from, to := domain.SemesterWindow(academicYear, semester)

	var rows []tallyRow
	err := rr.db.WithContext(ctx).
		Model(&domain.AttendanceEntry{}).
		Select("status, COUNT(*) AS total").
		Where("student_id = ?", studentID).
		Where("date >= ? AND date < ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return domain.AttendanceRecap{}, err
	}

	var recap domain.AttendanceRecap
	for _, row := range rows {
		switch row.Status {
		case domain.AttendanceSick:
			recap.Sick = row.Total
		case domain.AttendancePermit:
			recap.Permit = row.Total
		case domain.AttendanceAlpha:
			recap.Unexcused = row.Total
		}
	}
	return recap, nil
}

func (rr *reportRepository) BehaviorNotesForPeriod(ctx context.Context, studentID, academicYear int, semester domain.Semester) ([]domain.BehaviorNoteView, error) {
	var views []domain.BehaviorNoteView
	err := rr.db.WithContext(ctx).
		Model(&domain.BehaviorNote{}).
		Select("category, description, note_date").
		Where("student_id = ?", studentID).
		Where("academic_year = ?", academicYear).
		Where("semester = ?", semester).
		Order("note_date DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// PromotionOutcome reads the placement row for the year; no placement means
// the outcome is simply undetermined, not an error.
func (rr *reportRepository) PromotionOutcome(ctx context.Context, studentID, academicYear int) (domain.PromotionStatus, error) {
	var placement domain.ClassPlacement
	err := rr.db.WithContext(ctx).
		Where("student_id = ? AND academic_year = ?", studentID, academicYear).
		First(&placement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PromotionUndetermined, nil
		}
		return "", err
	}
	if placement.Promotion == "" {
		return domain.PromotionUndetermined, nil
	}
	return placement.Promotion, nil
}

func (rr *reportRepository) StudentsInClass(ctx context.Context, classID, academicYear int) ([]domain.StudentSummary, error) {
	var rows []domain.StudentSummary
	err := rr.db.WithContext(ctx).
		Table("class_placements").
		Select(`students.student_id,
			students.full_name,
			students.nisn,
			students.photo_url`).
		Joins("JOIN students ON students.student_id = class_placements.student_id").
		Where("class_placements.class_id = ? AND class_placements.academic_year = ?", classID, academicYear).
		Order("students.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
