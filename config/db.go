package config

import (
	"fmt"
	"hikmah/domain"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB initializes the database connection, runs migrations and seeds the
// admin account.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()
	var err error

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	if err := seedAdmin(db); err != nil {
		return db, err
	}

	fmt.Println("DB initialized")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	// Pastikan ENUM sudah dibuat sebelum digunakan
	enums := map[string]string{
		"gender_enum":     "'male', 'female'",
		"role_enum":       "'admin', 'guru', 'santri', 'wali'",
		"position_enum":   "'subject_teacher', 'homeroom'",
		"semester_enum":   "'Ganjil', 'Genap'",
		"attendance_enum": "'present', 'sick', 'permit', 'alpha'",
		"promotion_enum":  "'promoted', 'retained', 'graduated', 'undetermined'",
	}
	for name, values := range enums {
		stmt := fmt.Sprintf(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = '%s') THEN
			CREATE TYPE %s AS ENUM (%s);
		END IF;
	END $$`, name, name, values)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
	}

	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Student{},
		&domain.GuardianLink{},
		&domain.Teacher{},
		&domain.Level{},
		&domain.Subject{},
		&domain.Curriculum{},
		&domain.Class{},
		&domain.ClassPlacement{},
		&domain.TeachingAssignment{},
		&domain.GradeRecord{},
		&domain.AttendanceEntry{},
		&domain.BehaviorNote{},
		&domain.MemorizationProgress{},
		&domain.Payment{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&domain.Account{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := domain.Account{
		FullName: "Administrator",
		Username: username,
		Password: string(hashed),
		Role:     domain.RoleAdmin,
		Active:   true,
	}
	return db.Create(&admin).Error
}
