package repository

import (
	"context"
	"errors"
	"fmt"
	"hikmah/domain"
	"hikmah/middleware"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	var account domain.Account

	err := ar.db.WithContext(ctx).Where("username = ?", req.Username).First(&account).Error
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if !account.Active {
		return nil, fmt.Errorf("account is not active")
	}

	studentID := 0
	if account.Role == domain.RoleSantri {
		var student domain.Student
		err = ar.db.WithContext(ctx).Where("account_id = ?", account.AccountID).First(&student).Error
		if err != nil {
			return nil, fmt.Errorf("santri account is not linked to a student record")
		}
		studentID = student.StudentID
	}

	token, err := middleware.GenerateJWT(account.AccountID, account.Username, account.Role, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}

	return &domain.LoginResponse{
		Token:    token,
		Role:     account.Role,
		FullName: account.FullName,
	}, nil
}

func (ar *authRepository) Register(ctx context.Context, req *domain.RegistrationRequest) error {
	birthDate, err := time.Parse("2006-01-02", req.StudentBirthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date format, expected YYYY-MM-DD")
	}

	email := strings.ToLower(req.GuardianEmail)

	var existing domain.Account
	err = ar.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return fmt.Errorf("guardian email %s: %w", email, domain.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking guardian email: %w", err)
	}

	// The guardian logs in with a birthdate-derived password once the
	// registration is verified and the account activated.
	tempPassword := strings.ReplaceAll(req.StudentBirthDate, "-", "")
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	guardian := domain.Account{
		FullName:  req.GuardianName,
		Username:  email,
		Email:     &email,
		Password:  string(hashed),
		Telephone: req.GuardianPhone,
		Role:      domain.RoleWali,
		Active:    false,
	}
	if err := tx.Create(&guardian).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert guardian: %w", translateDBError(err))
	}

	student := domain.Student{
		GuardianID: guardian.AccountID,
		FullName:   req.StudentName,
		BirthDate:  birthDate,
		Gender:     req.StudentGender,
		Address:    req.StudentAddress,
	}
	if err := tx.Create(&student).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert student: %w", translateDBError(err))
	}

	link := domain.GuardianLink{
		AccountID:    guardian.AccountID,
		StudentID:    student.StudentID,
		Relationship: req.GuardianRelation,
	}
	if err := tx.Create(&link).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert guardian link: %w", translateDBError(err))
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}

func (ar *authRepository) ChangePassword(ctx context.Context, accountID int, oldPassword, newPassword string) error {
	var account domain.Account
	if err := ar.db.WithContext(ctx).First(&account, accountID).Error; err != nil {
		return translateDBError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return ar.db.WithContext(ctx).Model(&domain.Account{}).
		Where("account_id = ?", accountID).
		Update("password", string(hashed)).Error
}

func (ar *authRepository) ChangeUsername(ctx context.Context, accountID int, newUsername string) error {
	result := ar.db.WithContext(ctx).Model(&domain.Account{}).
		Where("account_id = ?", accountID).
		Update("username", newUsername)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
