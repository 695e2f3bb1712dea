package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hikmah/config"
	"hikmah/domain"
)

type attendanceUC struct {
	attendanceRepo domain.AttendanceRepo
	gradeRepo      domain.GradeRepo
	senderRepo     domain.SenderRepo
}

func NewAttendanceUseCase(repo domain.AttendanceRepo, gradeRepo domain.GradeRepo, sender domain.SenderRepo) domain.AttendanceUseCase {
	return &attendanceUC{
		attendanceRepo: repo,
		gradeRepo:      gradeRepo,
		senderRepo:     sender,
	}
}

// Record stores one attendance entry. An unexcused absence additionally fires
// a guardian alert; alert delivery is best effort and never fails the write.
func (auc *attendanceUC) Record(ctx context.Context, teacherAccountID int, req *domain.AttendanceRequest) error {
	status, err := domain.ParseAttendanceStatus(req.Status)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", domain.ErrValidation)
	}

	entry := domain.AttendanceEntry{
		StudentID: req.StudentID,
		Date:      date,
		Status:    status,
	}

	teacher, err := auc.gradeRepo.TeacherByAccount(ctx, teacherAccountID)
	switch {
	case err == nil:
		entry.TeacherID = &teacher.TeacherID
	case errors.Is(err, domain.ErrNotFound):
		// Admin accounts may record attendance without a teacher profile.
	default:
		return err
	}

	if err := auc.attendanceRepo.Record(ctx, &entry); err != nil {
		return err
	}

	if status == domain.AttendanceAlpha && auc.senderRepo != nil {
		go func(studentID int) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := auc.senderRepo.SendAbsenceAlert(sendCtx, studentID); err != nil {
				config.GetLogrusInstance().Warnf("absence alert for student %d failed: %v", studentID, err)
			}
		}(req.StudentID)
	}

	return nil
}
