package usecase

import (
	"context"
	"hikmah/domain"
)

type classUC struct {
	classRepo domain.ClassRepo
}

func NewClassUseCase(repo domain.ClassRepo) domain.ClassUseCase {
	return &classUC{
		classRepo: repo,
	}
}

func (cuc *classUC) Create(ctx context.Context, class *domain.Class) error {
	return cuc.classRepo.Create(ctx, class)
}

func (cuc *classUC) Delete(ctx context.Context, classID int) error {
	return cuc.classRepo.Delete(ctx, classID)
}

func (cuc *classUC) AssignHomeroom(ctx context.Context, classID, teacherID int) error {
	return cuc.classRepo.AssignHomeroom(ctx, classID, teacherID)
}

func (cuc *classUC) UnassignHomeroom(ctx context.Context, classID int) error {
	return cuc.classRepo.UnassignHomeroom(ctx, classID)
}

func (cuc *classUC) PlaceStudent(ctx context.Context, classID, studentID, academicYear int) error {
	return cuc.classRepo.PlaceStudent(ctx, classID, studentID, academicYear)
}

func (cuc *classUC) RemovePlacement(ctx context.Context, classID, studentID, academicYear int) error {
	return cuc.classRepo.RemovePlacement(ctx, classID, studentID, academicYear)
}

func (cuc *classUC) SetPromotion(ctx context.Context, studentID, classID, academicYear int, status domain.PromotionStatus) error {
	return cuc.classRepo.SetPromotion(ctx, studentID, classID, academicYear, status)
}

func (cuc *classUC) StudentsInClass(ctx context.Context, classID, academicYear int) ([]domain.StudentSummary, error) {
	return cuc.classRepo.StudentsInClass(ctx, classID, academicYear)
}
