package usecase

import (
	"context"
	"fmt"
	"time"

	"hikmah/config"
	"hikmah/domain"
)

type studentUC struct {
	studentRepo domain.StudentRepo
	senderRepo  domain.SenderRepo
}

func NewStudentUseCase(repo domain.StudentRepo, sender domain.SenderRepo) domain.StudentUseCase {
	return &studentUC{
		studentRepo: repo,
		senderRepo:  sender,
	}
}

func (suc *studentUC) Biodata(ctx context.Context, studentID int) (*domain.Student, error) {
	return suc.studentRepo.Biodata(ctx, studentID)
}

func (suc *studentUC) UpdateBiodata(ctx context.Context, studentID int, upd *domain.BiodataUpdate) error {
	fields := map[string]interface{}{}
	if upd.FullName != nil {
		fields["full_name"] = *upd.FullName
	}
	if upd.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *upd.BirthDate)
		if err != nil {
			return fmt.Errorf("invalid birth date format, expected YYYY-MM-DD: %w", domain.ErrValidation)
		}
		fields["birth_date"] = birthDate
	}
	if upd.Gender != nil {
		if *upd.Gender != "male" && *upd.Gender != "female" {
			return fmt.Errorf("invalid gender %q: %w", *upd.Gender, domain.ErrValidation)
		}
		fields["gender"] = *upd.Gender
	}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update: %w", domain.ErrValidation)
	}
	return suc.studentRepo.UpdateBiodata(ctx, studentID, fields)
}

func (suc *studentUC) PendingRegistrations(ctx context.Context) ([]domain.PendingRegistration, error) {
	return suc.studentRepo.PendingRegistrations(ctx)
}

// Verify activates the registration and forwards the generated credentials to
// the guardian. Delivery failures never undo the verification.
func (suc *studentUC) Verify(ctx context.Context, studentID int) (*domain.VerifiedCredentials, error) {
	creds, err := suc.studentRepo.Verify(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if suc.senderRepo != nil {
		go func(creds domain.VerifiedCredentials) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := suc.senderRepo.SendCredentials(sendCtx, studentID, &creds); err != nil {
				config.GetLogrusInstance().Warnf("credential notification for student %d failed: %v", studentID, err)
			}
		}(*creds)
	}

	return creds, nil
}

func (suc *studentUC) ListGrouped(ctx context.Context, academicYear int) (domain.GroupedStudents, error) {
	return suc.studentRepo.ListGrouped(ctx, academicYear)
}

func (suc *studentUC) UpdateNISN(ctx context.Context, studentID int, nisn string) error {
	if nisn == "" {
		return fmt.Errorf("NISN is required: %w", domain.ErrValidation)
	}
	return suc.studentRepo.UpdateNISN(ctx, studentID, nisn)
}

func (suc *studentUC) Delete(ctx context.Context, studentID int) error {
	return suc.studentRepo.Delete(ctx, studentID)
}

func (suc *studentUC) RecordProgress(ctx context.Context, teacherAccountID int, progress *domain.MemorizationProgress) error {
	if progress.FromAyah < 1 || progress.ToAyah < progress.FromAyah {
		return fmt.Errorf("invalid ayah range %d-%d: %w", progress.FromAyah, progress.ToAyah, domain.ErrValidation)
	}
	return suc.studentRepo.RecordProgress(ctx, teacherAccountID, progress)
}

func (suc *studentUC) ProgressByStudent(ctx context.Context, studentID int) ([]domain.MemorizationProgress, error) {
	return suc.studentRepo.ProgressByStudent(ctx, studentID)
}
