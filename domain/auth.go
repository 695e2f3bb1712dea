package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type LoginRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

// Claims carries the caller identity the role middleware trusts. StudentID is
// only set for santri logins.
type Claims struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	StudentID int    `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}

// RegistrationRequest is the public guardian+santri sign-up payload. The
// guardian account stays inactive until an admin verifies the registration.
type RegistrationRequest struct {
	GuardianName      string `json:"guardian_name" valid:"required~Guardian name is required"`
	GuardianEmail     string `json:"guardian_email" valid:"required~Guardian email is required,email~Invalid guardian email"`
	GuardianPhone     string `json:"guardian_phone" valid:"required~Guardian phone is required"`
	GuardianRelation  string `json:"guardian_relation" valid:"required~Guardian relation is required"`
	StudentName       string `json:"student_name" valid:"required~Student name is required"`
	StudentBirthDate  string `json:"student_birth_date" valid:"required~Student birth date is required"`
	StudentGender     string `json:"student_gender" valid:"required~Student gender is required,in(male|female)~Invalid gender"`
	StudentAddress    string `json:"student_address" valid:"required~Student address is required"`
}

type AuthRepo interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *RegistrationRequest) error
	ChangePassword(ctx context.Context, accountID int, oldPassword, newPassword string) error
	ChangeUsername(ctx context.Context, accountID int, newUsername string) error
}

type AuthUseCase interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *RegistrationRequest) error
	ChangePassword(ctx context.Context, accountID int, oldPassword, newPassword string) error
	ChangeUsername(ctx context.Context, accountID int, newUsername string) error
}
