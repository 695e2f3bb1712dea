package usecase

import (
	"context"
	"fmt"

	"hikmah/domain"
)

type gradeUC struct {
	gradeRepo domain.GradeRepo
}

func NewGradeUseCase(repo domain.GradeRepo) domain.GradeUseCase {
	return &gradeUC{
		gradeRepo: repo,
	}
}

// Submit writes one grade row for the (student, subject, year, semester) key.
// The final score is recomputed from the components on every submission, so a
// resubmission fully supersedes the previous row. Component scores are taken
// as given; no range is enforced.
func (guc *gradeUC) Submit(ctx context.Context, teacherAccountID int, sub *domain.GradeSubmission) error {
	semester, err := domain.ParseSemester(sub.Semester)
	if err != nil {
		return err
	}

	teacher, err := guc.gradeRepo.TeacherByAccount(ctx, teacherAccountID)
	if err != nil {
		return fmt.Errorf("no teacher profile for this account: %w", err)
	}

	allowed, err := guc.gradeRepo.HasAssignmentFor(ctx, teacher.TeacherID, sub.SubjectID, sub.StudentID, sub.AcademicYear)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("no teaching assignment covers this student and subject: %w", domain.ErrNotFound)
	}

	record := domain.GradeRecord{
		StudentID:      sub.StudentID,
		SubjectID:      sub.SubjectID,
		TeacherID:      teacher.TeacherID,
		AcademicYear:   sub.AcademicYear,
		Semester:       semester,
		TaskScore:      sub.TaskScore,
		MidtermScore:   sub.MidtermScore,
		FinalExamScore: sub.FinalExamScore,
		FinalScore:     domain.ComputeFinalScore(sub.TaskScore, sub.MidtermScore, sub.FinalExamScore),
		Commentary:     sub.Commentary,
	}

	return guc.gradeRepo.Upsert(ctx, &record)
}
