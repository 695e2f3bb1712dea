package usecase

import (
	"context"
	"hikmah/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
}

func NewAuthUseCase(repo domain.AuthRepo) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
	}
}

func (auc *authUC) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	resp, err := auc.authRepo.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (auc *authUC) Register(ctx context.Context, req *domain.RegistrationRequest) error {
	return auc.authRepo.Register(ctx, req)
}

func (auc *authUC) ChangePassword(ctx context.Context, accountID int, oldPassword, newPassword string) error {
	return auc.authRepo.ChangePassword(ctx, accountID, oldPassword, newPassword)
}

func (auc *authUC) ChangeUsername(ctx context.Context, accountID int, newUsername string) error {
	return auc.authRepo.ChangeUsername(ctx, accountID, newUsername)
}
