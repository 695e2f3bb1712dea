package repository

import (
	"context"
	"errors"
	"fmt"
	"hikmah/domain"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepo {
	return &studentRepository{
		db: db,
	}
}

func (sr *studentRepository) Biodata(ctx context.Context, studentID int) (*domain.Student, error) {
	var student domain.Student
	if err := sr.db.WithContext(ctx).First(&student, studentID).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &student, nil
}

func (sr *studentRepository) UpdateBiodata(ctx context.Context, studentID int, fields map[string]interface{}) error {
	result := sr.db.WithContext(ctx).Model(&domain.Student{}).
		Where("student_id = ?", studentID).
		Updates(fields)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (sr *studentRepository) PendingRegistrations(ctx context.Context) ([]domain.PendingRegistration, error) {
	var rows []domain.PendingRegistration
	err := sr.db.WithContext(ctx).
		Table("students").
		Select(`students.student_id,
			students.full_name AS student_name,
			accounts.full_name AS guardian_name,
			accounts.email AS guardian_email,
			students.registered_at`).
		Joins("JOIN accounts ON accounts.account_id = students.guardian_id").
		Where("accounts.active = ? AND students.account_id IS NULL", false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Verify turns a pending registration into an active santri account: a unique
// username is derived from the name, the birthdate becomes the first password
// and the guardian account is switched on, all in one transaction.
func (sr *studentRepository) Verify(ctx context.Context, studentID int) (*domain.VerifiedCredentials, error) {
	var student domain.Student
	err := sr.db.WithContext(ctx).
		Where("student_id = ? AND account_id IS NULL", studentID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("registration already verified or missing: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	tx := sr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}

	baseUsername := strings.ToLower(strings.Join(strings.Fields(student.FullName), "."))
	finalUsername := baseUsername
	for counter := 1; ; counter++ {
		var count int64
		if err := tx.Model(&domain.Account{}).Where("username = ?", finalUsername).Count(&count).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if count == 0 {
			break
		}
		finalUsername = fmt.Sprintf("%s.%d", baseUsername, counter)
	}

	password := student.BirthDate.Format("20060102")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{
		FullName: student.FullName,
		Username: finalUsername,
		Password: string(hashed),
		Role:     domain.RoleSantri,
		Active:   true,
	}
	if err := tx.Create(&account).Error; err != nil {
		tx.Rollback()
		return nil, translateDBError(err)
	}

	if err := tx.Model(&domain.Student{}).
		Where("student_id = ?", student.StudentID).
		Update("account_id", account.AccountID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&domain.Account{}).
		Where("account_id = ?", student.GuardianID).
		Update("active", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	return &domain.VerifiedCredentials{
		StudentID:   student.StudentID,
		StudentName: student.FullName,
		Username:    finalUsername,
		Password:    password,
	}, nil
}

type groupedStudentRow struct {
	StudentID    int
	FullName     string
	NISN         *string
	PhotoURL     *string
	GuardianName *string
	LevelName    *string
	ClassName    *string
}

func (sr *studentRepository) ListGrouped(ctx context.Context, academicYear int) (domain.GroupedStudents, error) {
	var rows []groupedStudentRow
	err := sr.db.WithContext(ctx).
		Table("students").
		Select(`students.student_id,
			students.full_name,
			students.nisn,
			students.photo_url,
			guardians.full_name AS guardian_name,
			levels.name AS level_name,
			classes.name AS class_name`).
		Joins("LEFT JOIN accounts AS guardians ON guardians.account_id = students.guardian_id").
		Joins("LEFT JOIN class_placements ON class_placements.student_id = students.student_id AND class_placements.academic_year = ?", academicYear).
		Joins("LEFT JOIN classes ON classes.class_id = class_placements.class_id").
		Joins("LEFT JOIN levels ON levels.level_id = classes.level_id").
		Order("levels.name, classes.name, students.full_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := domain.GroupedStudents{}
	for _, row := range rows {
		level := "Unplaced"
		if row.LevelName != nil {
			level = *row.LevelName
		}
		class := "unassigned"
		if row.ClassName != nil {
			class = *row.ClassName
		}
		if grouped[level] == nil {
			grouped[level] = map[string][]domain.StudentSummary{}
		}
		grouped[level][class] = append(grouped[level][class], domain.StudentSummary{
			StudentID:    row.StudentID,
			FullName:     row.FullName,
			NISN:         row.NISN,
			PhotoURL:     row.PhotoURL,
			GuardianName: row.GuardianName,
		})
	}
	return grouped, nil
}

func (sr *studentRepository) UpdateNISN(ctx context.Context, studentID int, nisn string) error {
	var count int64
	err := sr.db.WithContext(ctx).Model(&domain.Student{}).
		Where("nisn = ? AND student_id != ?", nisn, studentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("nisn %s: %w", nisn, domain.ErrConflict)
	}

	result := sr.db.WithContext(ctx).Model(&domain.Student{}).
		Where("student_id = ?", studentID).
		Update("nisn", nisn)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a santri and every dependent row in one transaction,
// children first so referential integrity holds without relying on cascades.
func (sr *studentRepository) Delete(ctx context.Context, studentID int) error {
	var student domain.Student
	if err := sr.db.WithContext(ctx).First(&student, studentID).Error; err != nil {
		return translateDBError(err)
	}

	tx := sr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	dependents := []interface{}{
		&domain.AttendanceEntry{},
		&domain.GradeRecord{},
		&domain.MemorizationProgress{},
		&domain.BehaviorNote{},
		&domain.Payment{},
		&domain.ClassPlacement{},
		&domain.GuardianLink{},
	}
	for _, model := range dependents {
		if err := tx.Where("student_id = ?", studentID).Delete(model).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	}

	if err := tx.Delete(&domain.Student{}, studentID).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if student.AccountID != nil {
		if err := tx.Delete(&domain.Account{}, *student.AccountID).Error; err != nil {
			tx.Rollback()
			return translateDBError(err)
		}
	}
	if err := tx.Delete(&domain.Account{}, student.GuardianID).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (sr *studentRepository) RecordProgress(ctx context.Context, teacherAccountID int, progress *domain.MemorizationProgress) error {
	var teacher domain.Teacher
	err := sr.db.WithContext(ctx).Where("account_id = ?", teacherAccountID).First(&teacher).Error
	if err != nil {
		return fmt.Errorf("teacher profile: %w", translateDBError(err))
	}

	progress.TeacherID = teacher.TeacherID
	return translateDBError(sr.db.WithContext(ctx).Create(progress).Error)
}

func (sr *studentRepository) ProgressByStudent(ctx context.Context, studentID int) ([]domain.MemorizationProgress, error) {
	var rows []domain.MemorizationProgress
	err := sr.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("recorded_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
