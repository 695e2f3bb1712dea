package usecase

import (
	"context"
	"hikmah/domain"
)

type teacherUC struct {
	teacherRepo domain.TeacherRepo
}

func NewTeacherUseCase(repo domain.TeacherRepo) domain.TeacherUseCase {
	return &teacherUC{
		teacherRepo: repo,
	}
}

func (tuc *teacherUC) Create(ctx context.Context, req *domain.TeacherRequest) (*domain.CreatedTeacher, error) {
	return tuc.teacherRepo.Create(ctx, req)
}

func (tuc *teacherUC) List(ctx context.Context) ([]domain.TeacherDetail, error) {
	return tuc.teacherRepo.List(ctx)
}

func (tuc *teacherUC) Update(ctx context.Context, teacherID int, req *domain.TeacherRequest) error {
	return tuc.teacherRepo.Update(ctx, teacherID, req)
}

func (tuc *teacherUC) Delete(ctx context.Context, teacherID int) error {
	return tuc.teacherRepo.Delete(ctx, teacherID)
}

func (tuc *teacherUC) ProfileByAccount(ctx context.Context, accountID int) (*domain.TeacherDetail, error) {
	return tuc.teacherRepo.ProfileByAccount(ctx, accountID)
}

func (tuc *teacherUC) HomeroomList(ctx context.Context) (map[string][]domain.HomeroomEntry, error) {
	return tuc.teacherRepo.HomeroomList(ctx)
}
