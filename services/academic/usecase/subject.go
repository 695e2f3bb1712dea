package usecase

import (
	"context"
	"hikmah/domain"
)

type subjectUC struct {
	subjectRepo domain.SubjectRepo
}

func NewSubjectUseCase(repo domain.SubjectRepo) domain.SubjectUseCase {
	return &subjectUC{
		subjectRepo: repo,
	}
}

func (suc *subjectUC) Create(ctx context.Context, subject *domain.Subject) error {
	return suc.subjectRepo.Create(ctx, subject)
}

func (suc *subjectUC) List(ctx context.Context) ([]domain.Subject, error) {
	return suc.subjectRepo.List(ctx)
}

func (suc *subjectUC) Delete(ctx context.Context, subjectID int) error {
	return suc.subjectRepo.Delete(ctx, subjectID)
}

func (suc *subjectUC) AddToLevel(ctx context.Context, subjectID, levelID int) error {
	return suc.subjectRepo.AddToLevel(ctx, subjectID, levelID)
}

func (suc *subjectUC) CreateAssignment(ctx context.Context, assignment *domain.TeachingAssignment) error {
	return suc.subjectRepo.CreateAssignment(ctx, assignment)
}

func (suc *subjectUC) ListAssignments(ctx context.Context) ([]domain.AssignmentDetail, error) {
	return suc.subjectRepo.ListAssignments(ctx)
}

func (suc *subjectUC) UpdateAssignmentTeacher(ctx context.Context, assignmentID, newTeacherID int) error {
	return suc.subjectRepo.UpdateAssignmentTeacher(ctx, assignmentID, newTeacherID)
}

func (suc *subjectUC) DeleteAssignment(ctx context.Context, assignmentID int) error {
	return suc.subjectRepo.DeleteAssignment(ctx, assignmentID)
}
