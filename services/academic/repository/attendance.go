package repository

import (
	"context"
	"hikmah/domain"

	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepo {
	return &attendanceRepository{
		db: db,
	}
}

func (ar *attendanceRepository) Record(ctx context.Context, entry *domain.AttendanceEntry) error {
	var count int64
	err := ar.db.WithContext(ctx).Model(&domain.Student{}).
		Where("student_id = ?", entry.StudentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}

	if err := ar.db.WithContext(ctx).Create(entry).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
