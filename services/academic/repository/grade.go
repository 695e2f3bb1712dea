package repository

import (
	"context"
	"errors"
	"hikmah/domain"

	"gorm.io/gorm"
)

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) domain.GradeRepo {
	return &gradeRepository{
		db: db,
	}
}

func (gr *gradeRepository) TeacherByAccount(ctx context.Context, accountID int) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := gr.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&teacher).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &teacher, nil
}

// HasAssignmentFor checks that the teacher holds a teaching assignment for the
// subject in the class the student is placed in for that year.
func (gr *gradeRepository) HasAssignmentFor(ctx context.Context, teacherID, subjectID, studentID, academicYear int) (bool, error) {
	var count int64
	err := gr.db.WithContext(ctx).
		Table("teaching_assignments").
		Joins(`JOIN class_placements ON class_placements.class_id = teaching_assignments.class_id
			AND class_placements.academic_year = teaching_assignments.academic_year`).
		Where("teaching_assignments.teacher_id = ?", teacherID).
		Where("teaching_assignments.subject_id = ?", subjectID).
		Where("teaching_assignments.academic_year = ?", academicYear).
		Where("class_placements.student_id = ?", studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gr *gradeRepository) Upsert(ctx context.Context, record *domain.GradeRecord) error {
	tx := gr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return err
	}

	var existing domain.GradeRecord
	err := tx.Where("student_id = ? AND subject_id = ? AND academic_year = ? AND semester = ?",
		record.StudentID, record.SubjectID, record.AcademicYear, record.Semester).
		First(&existing).Error
	switch {
	case err == nil:
		if err := tx.Model(&domain.GradeRecord{}).
			Where("grade_id = ?", existing.GradeID).
			Updates(map[string]interface{}{
				"teacher_id":       record.TeacherID,
				"task_score":       record.TaskScore,
				"midterm_score":    record.MidtermScore,
				"final_exam_score": record.FinalExamScore,
				"final_score":      record.FinalScore,
				"commentary":       record.Commentary,
			}).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
		record.GradeID = existing.GradeID
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(record).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	default:
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
