package repository

import (
	"context"
	"hikmah/domain"

	"gorm.io/gorm"
)

type behaviorRepository struct {
	db *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) domain.BehaviorRepo {
	return &behaviorRepository{
		db: db,
	}
}

func (br *behaviorRepository) Create(ctx context.Context, note *domain.BehaviorNote) error {
	var count int64
	err := br.db.WithContext(ctx).Model(&domain.Student{}).
		Where("student_id = ?", note.StudentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}

	if err := br.db.WithContext(ctx).Create(note).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (br *behaviorRepository) ListByStudent(ctx context.Context, studentID int) ([]domain.BehaviorNote, error) {
	var notes []domain.BehaviorNote
	err := br.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("note_date DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update only touches rows authored by the given teacher; a miss on either
// condition reads as not found.
func (br *behaviorRepository) Update(ctx context.Context, noteID, teacherID int, category, description string) error {
	result := br.db.WithContext(ctx).Model(&domain.BehaviorNote{}).
		Where("note_id = ? AND teacher_id = ?", noteID, teacherID).
		Updates(map[string]interface{}{
			"category":    category,
			"description": description,
		})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (br *behaviorRepository) Delete(ctx context.Context, noteID, teacherID int) error {
	result := br.db.WithContext(ctx).
		Where("note_id = ? AND teacher_id = ?", noteID, teacherID).
		Delete(&domain.BehaviorNote{})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (br *behaviorRepository) TeacherByAccount(ctx context.Context, accountID int) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := br.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&teacher).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &teacher, nil
}
