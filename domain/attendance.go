package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceSick    AttendanceStatus = "sick"
	AttendancePermit  AttendanceStatus = "permit"
	AttendanceAlpha   AttendanceStatus = "alpha" // unexcused absence
)

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(strings.ToLower(s)) {
	case AttendancePresent:
		return AttendancePresent, nil
	case AttendanceSick:
		return AttendanceSick, nil
	case AttendancePermit:
		return AttendancePermit, nil
	case AttendanceAlpha:
		return AttendanceAlpha, nil
	}
	return "", fmt.Errorf("unknown attendance status %q: %w", s, ErrValidation)
}

type AttendanceEntry struct {
	AttendanceID int              `gorm:"primaryKey;autoIncrement" json:"attendance_id"`
	StudentID    int              `gorm:"not null;index" json:"student_id"`
	TeacherID    *int             `json:"teacher_id,omitempty"`
	Date         time.Time        `gorm:"not null" json:"date"`
	Status       AttendanceStatus `gorm:"type:attendance_enum;not null" json:"status"`
}

type AttendanceRequest struct {
	StudentID int    `json:"student_id" valid:"required~Student ID is required"`
	Date      string `json:"date" valid:"required~Date is required"`
	Status    string `json:"status" valid:"required~Status is required"`
}

type AttendanceRepo interface {
	Record(ctx context.Context, entry *AttendanceEntry) error
}

type AttendanceUseCase interface {
	Record(ctx context.Context, teacherAccountID int, req *AttendanceRequest) error
}
