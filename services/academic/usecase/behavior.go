package usecase

import (
	"context"
	"fmt"
	"time"

	"hikmah/domain"
)

type behaviorUC struct {
	behaviorRepo domain.BehaviorRepo
}

func NewBehaviorUseCase(repo domain.BehaviorRepo) domain.BehaviorUseCase {
	return &behaviorUC{
		behaviorRepo: repo,
	}
}

func (buc *behaviorUC) Create(ctx context.Context, teacherAccountID, studentID int, req *domain.BehaviorNoteRequest) error {
	semester, err := domain.ParseSemester(req.Semester)
	if err != nil {
		return err
	}

	noteDate, err := time.Parse("2006-01-02", req.NoteDate)
	if err != nil {
		return fmt.Errorf("invalid note date format, expected YYYY-MM-DD: %w", domain.ErrValidation)
	}

	teacher, err := buc.behaviorRepo.TeacherByAccount(ctx, teacherAccountID)
	if err != nil {
		return fmt.Errorf("no teacher profile for this account: %w", err)
	}

	note := domain.BehaviorNote{
		StudentID:    studentID,
		TeacherID:    teacher.TeacherID,
		AcademicYear: req.AcademicYear,
		Semester:     semester,
		NoteDate:     noteDate,
		Category:     req.Category,
		Description:  req.Description,
	}
	return buc.behaviorRepo.Create(ctx, &note)
}

func (buc *behaviorUC) ListByStudent(ctx context.Context, studentID int) ([]domain.BehaviorNote, error) {
	return buc.behaviorRepo.ListByStudent(ctx, studentID)
}

func (buc *behaviorUC) Update(ctx context.Context, teacherAccountID, noteID int, category, description string) error {
	if category == "" || description == "" {
		return fmt.Errorf("category and description are required: %w", domain.ErrValidation)
	}
	teacher, err := buc.behaviorRepo.TeacherByAccount(ctx, teacherAccountID)
	if err != nil {
		return fmt.Errorf("no teacher profile for this account: %w", err)
	}
	return buc.behaviorRepo.Update(ctx, noteID, teacher.TeacherID, category, description)
}

func (buc *behaviorUC) Delete(ctx context.Context, teacherAccountID, noteID int) error {
	teacher, err := buc.behaviorRepo.TeacherByAccount(ctx, teacherAccountID)
	if err != nil {
		return fmt.Errorf("no teacher profile for this account: %w", err)
	}
	return buc.behaviorRepo.Delete(ctx, noteID, teacher.TeacherID)
}
