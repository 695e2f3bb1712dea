package repository

import (
	"context"
	"errors"
	"hikmah/domain"

	"gorm.io/gorm"
)

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) domain.ClassRepo {
	return &classRepository{
		db: db,
	}
}

func (cr *classRepository) Create(ctx context.Context, class *domain.Class) error {
	if err := cr.db.WithContext(ctx).Create(class).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (cr *classRepository) Delete(ctx context.Context, classID int) error {
	var count int64
	err := cr.db.WithContext(ctx).Model(&domain.ClassPlacement{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrInUse
	}

	result := cr.db.WithContext(ctx).Delete(&domain.Class{}, classID)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (cr *classRepository) AssignHomeroom(ctx context.Context, classID, teacherID int) error {
	tx := cr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return err
	}

	result := tx.Model(&domain.Class{}).
		Where("class_id = ?", classID).
		Update("homeroom_teacher_id", teacherID)
	if result.Error != nil {
		tx.Rollback()
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return domain.ErrNotFound
	}

	if err := tx.Model(&domain.Teacher{}).
		Where("teacher_id = ?", teacherID).
		Update("position", domain.PositionHomeroom).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	return tx.Commit().Error
}

func (cr *classRepository) UnassignHomeroom(ctx context.Context, classID int) error {
	var class domain.Class
	if err := cr.db.WithContext(ctx).First(&class, classID).Error; err != nil {
		return translateDBError(err)
	}
	if class.HomeroomTeacherID == nil {
		return nil
	}

	tx := cr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return err
	}

	if err := tx.Model(&domain.Class{}).
		Where("class_id = ?", classID).
		Update("homeroom_teacher_id", nil).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	// The guru drops back to subject teacher only when no other class keeps
	// them as homeroom.
	var remaining int64
	if err := tx.Model(&domain.Class{}).
		Where("homeroom_teacher_id = ?", *class.HomeroomTeacherID).
		Count(&remaining).Error; err != nil {
		tx.Rollback()
		return err
	}
	if remaining == 0 {
		if err := tx.Model(&domain.Teacher{}).
			Where("teacher_id = ?", *class.HomeroomTeacherID).
			Update("position", domain.PositionSubjectTeacher).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	}

	return tx.Commit().Error
}

func (cr *classRepository) PlaceStudent(ctx context.Context, classID, studentID, academicYear int) error {
	tx := cr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return err
	}

	var placement domain.ClassPlacement
	err := tx.Where("student_id = ? AND academic_year = ?", studentID, academicYear).
		First(&placement).Error
	switch {
	case err == nil:
		if err := tx.Model(&domain.ClassPlacement{}).
			Where("placement_id = ?", placement.PlacementID).
			Update("class_id", classID).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		placement = domain.ClassPlacement{
			StudentID:    studentID,
			ClassID:      classID,
			AcademicYear: academicYear,
			Promotion:    domain.PromotionUndetermined,
		}
		if err := tx.Create(&placement).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	default:
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (cr *classRepository) RemovePlacement(ctx context.Context, classID, studentID, academicYear int) error {
	result := cr.db.WithContext(ctx).
		Where("class_id = ? AND student_id = ? AND academic_year = ?", classID, studentID, academicYear).
		Delete(&domain.ClassPlacement{})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (cr *classRepository) SetPromotion(ctx context.Context, studentID, classID, academicYear int, status domain.PromotionStatus) error {
	result := cr.db.WithContext(ctx).Model(&domain.ClassPlacement{}).
		Where("student_id = ? AND class_id = ? AND academic_year = ?", studentID, classID, academicYear).
		Update("promotion", status)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (cr *classRepository) StudentsInClass(ctx context.Context, classID, academicYear int) ([]domain.StudentSummary, error) {
	var rows []domain.StudentSummary
	err := cr.db.WithContext(ctx).
		Table("class_placements").
		Select(`students.student_id,
			students.full_name,
			students.nisn,
			students.photo_url,
			guardians.full_name AS guardian_name`).
		Joins("JOIN students ON students.student_id = class_placements.student_id").
		Joins("LEFT JOIN accounts guardians ON guardians.account_id = students.guardian_id").
		Where("class_placements.class_id = ? AND class_placements.academic_year = ?", classID, academicYear).
		Order("students.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
