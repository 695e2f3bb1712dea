package repository

import (
	"context"
	"fmt"
	"hikmah/domain"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) domain.TeacherRepo {
	return &teacherRepository{
		db: db,
	}
}

func (tr *teacherRepository) Create(ctx context.Context, req *domain.TeacherRequest) (*domain.CreatedTeacher, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date format, expected YYYY-MM-DD")
	}

	email := strings.ToLower(req.Email)

	var count int64
	err = tr.db.WithContext(ctx).Model(&domain.Account{}).
		Where("username = ? OR email = ?", req.Username, email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("username or email: %w", domain.ErrConflict)
	}

	defaultPassword := strings.ReplaceAll(req.BirthDate, "-", "")
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx := tr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}

	account := domain.Account{
		FullName: req.FullName,
		Username: req.Username,
		Email:    &email,
		Password: string(hashed),
		Role:     domain.RoleGuru,
		Active:   true,
	}
	if err := tx.Create(&account).Error; err != nil {
		tx.Rollback()
		return nil, translateDBError(err)
	}

	teacher := domain.Teacher{
		AccountID:     account.AccountID,
		BirthPlace:    req.BirthPlace,
		BirthDate:     birthDate,
		Address:       req.Address,
		TeachingSince: req.TeachingSince,
		HighestDegree: req.HighestDegree,
		Position:      domain.PositionSubjectTeacher,
	}
	if err := tx.Create(&teacher).Error; err != nil {
		tx.Rollback()
		return nil, translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	return &domain.CreatedTeacher{
		TeacherID: teacher.TeacherID,
		Username:  req.Username,
		Password:  defaultPassword,
	}, nil
}

func (tr *teacherRepository) List(ctx context.Context) ([]domain.TeacherDetail, error) {
	var rows []domain.TeacherDetail
	err := tr.db.WithContext(ctx).
		Table("teachers").
		Select(`teachers.teacher_id,
			accounts.account_id,
			accounts.full_name,
			accounts.username,
			accounts.email,
			teachers.birth_place,
			teachers.birth_date,
			teachers.address,
			teachers.teaching_since,
			teachers.highest_degree,
			teachers.position`).
		Joins("JOIN accounts ON accounts.account_id = teachers.account_id").
		Order("accounts.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (tr *teacherRepository) Update(ctx context.Context, teacherID int, req *domain.TeacherRequest) error {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date format, expected YYYY-MM-DD")
	}

	var teacher domain.Teacher
	if err := tr.db.WithContext(ctx).First(&teacher, teacherID).Error; err != nil {
		return translateDBError(err)
	}

	email := strings.ToLower(req.Email)

	tx := tr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Model(&domain.Account{}).
		Where("account_id = ?", teacher.AccountID).
		Updates(map[string]interface{}{
			"full_name": req.FullName,
			"username":  req.Username,
			"email":     email,
		}).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Model(&domain.Teacher{}).
		Where("teacher_id = ?", teacherID).
		Updates(map[string]interface{}{
			"birth_place":    req.BirthPlace,
			"birth_date":     birthDate,
			"address":        req.Address,
			"teaching_since": req.TeachingSince,
			"highest_degree": req.HighestDegree,
		}).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (tr *teacherRepository) Delete(ctx context.Context, teacherID int) error {
	var teacher domain.Teacher
	if err := tr.db.WithContext(ctx).First(&teacher, teacherID).Error; err != nil {
		return translateDBError(err)
	}

	tx := tr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	// Homeroom links are released, teaching assignments go with the guru.
	if err := tx.Model(&domain.Class{}).
		Where("homeroom_teacher_id = ?", teacherID).
		Update("homeroom_teacher_id", nil).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}
	if err := tx.Where("teacher_id = ?", teacherID).Delete(&domain.TeachingAssignment{}).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Delete(&domain.Teacher{}, teacherID).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}
	if err := tx.Delete(&domain.Account{}, teacher.AccountID).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (tr *teacherRepository) ProfileByAccount(ctx context.Context, accountID int) (*domain.TeacherDetail, error) {
	var row domain.TeacherDetail
	err := tr.db.WithContext(ctx).
		Table("teachers").
		Select(`teachers.teacher_id,
			accounts.account_id,
			accounts.full_name,
			accounts.username,
			accounts.email,
			teachers.birth_place,
			teachers.birth_date,
			teachers.address,
			teachers.teaching_since,
			teachers.highest_degree,
			teachers.position`).
		Joins("JOIN accounts ON accounts.account_id = teachers.account_id").
		Where("accounts.account_id = ?", accountID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.TeacherID == 0 {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

type homeroomRow struct {
	ClassID     int
	ClassName   string
	LevelName   string
	TeacherID   *int
	TeacherName *string
}

func (tr *teacherRepository) HomeroomList(ctx context.Context) (map[string][]domain.HomeroomEntry, error) {
	var rows []homeroomRow
	err := tr.db.WithContext(ctx).
		Table("classes").
		Select(`classes.class_id,
			classes.name AS class_name,
			levels.name AS level_name,
			teachers.teacher_id,
			accounts.full_name AS teacher_name`).
		Joins("JOIN levels ON levels.level_id = classes.level_id").
		Joins("LEFT JOIN teachers ON teachers.teacher_id = classes.homeroom_teacher_id").
		Joins("LEFT JOIN accounts ON accounts.account_id = teachers.account_id").
		Order("levels.level_id, classes.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := map[string][]domain.HomeroomEntry{}
	for _, row := range rows {
		grouped[row.LevelName] = append(grouped[row.LevelName], domain.HomeroomEntry{
			ClassID:     row.ClassID,
			ClassName:   row.ClassName,
			LevelName:   row.LevelName,
			TeacherID:   row.TeacherID,
			TeacherName: row.TeacherName,
		})
	}
	return grouped, nil
}
