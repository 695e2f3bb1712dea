package repository

import (
	"context"
	"hikmah/domain"

	"gorm.io/gorm"
)

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) domain.SubjectRepo {
	return &subjectRepository{
		db: db,
	}
}

func (sr *subjectRepository) Create(ctx context.Context, subject *domain.Subject) error {
	if err := sr.db.WithContext(ctx).Create(subject).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (sr *subjectRepository) List(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := sr.db.WithContext(ctx).Order("name ASC").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (sr *subjectRepository) Delete(ctx context.Context, subjectID int) error {
	result := sr.db.WithContext(ctx).Delete(&domain.Subject{}, subjectID)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (sr *subjectRepository) AddToLevel(ctx context.Context, subjectID, levelID int) error {
	var count int64
	err := sr.db.WithContext(ctx).Model(&domain.Subject{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}

	entry := domain.Curriculum{
		SubjectID: subjectID,
		LevelID:   levelID,
	}
	if err := sr.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (sr *subjectRepository) CreateAssignment(ctx context.Context, assignment *domain.TeachingAssignment) error {
	if err := sr.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (sr *subjectRepository) ListAssignments(ctx context.Context) ([]domain.AssignmentDetail, error) {
	var rows []domain.AssignmentDetail
	err := sr.db.WithContext(ctx).
		Table("teaching_assignments").
		Select(`teaching_assignments.assignment_id,
			teaching_assignments.academic_year,
			classes.name AS class_name,
			subjects.name AS subject_name,
			accounts.full_name AS teacher_name`).
		Joins("JOIN classes ON classes.class_id = teaching_assignments.class_id").
		Joins("JOIN subjects ON subjects.subject_id = teaching_assignments.subject_id").
		Joins("JOIN teachers ON teachers.teacher_id = teaching_assignments.teacher_id").
		Joins("JOIN accounts ON accounts.account_id = teachers.account_id").
		Order("teaching_assignments.academic_year DESC, classes.name, subjects.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (sr *subjectRepository) UpdateAssignmentTeacher(ctx context.Context, assignmentID, newTeacherID int) error {
	result := sr.db.WithContext(ctx).Model(&domain.TeachingAssignment{}).
		Where("assignment_id = ?", assignmentID).
		Update("teacher_id", newTeacherID)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (sr *subjectRepository) DeleteAssignment(ctx context.Context, assignmentID int) error {
	result := sr.db.WithContext(ctx).Delete(&domain.TeachingAssignment{}, assignmentID)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
