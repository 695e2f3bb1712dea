package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"hikmah/domain"
)

type gradeKey struct {
	studentID    int
	subjectID    int
	academicYear int
	semester     domain.Semester
}

type fakeGradeRepo struct {
	teachers    map[int]*domain.Teacher
	assignments map[string]bool
	records     map[gradeKey]domain.GradeRecord
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{
		teachers:    map[int]*domain.Teacher{},
		assignments: map[string]bool{},
		records:     map[gradeKey]domain.GradeRecord{},
	}
}

func assignmentKey(teacherID, subjectID, studentID, academicYear int) string {
	return fmt.Sprintf("%d/%d/%d/%d", teacherID, subjectID, studentID, academicYear)
}

func (f *fakeGradeRepo) TeacherByAccount(_ context.Context, accountID int) (*domain.Teacher, error) {
	teacher, ok := f.teachers[accountID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return teacher, nil
}

func (f *fakeGradeRepo) HasAssignmentFor(_ context.Context, teacherID, subjectID, studentID, academicYear int) (bool, error) {
	return f.assignments[assignmentKey(teacherID, subjectID, studentID, academicYear)], nil
}

func (f *fakeGradeRepo) Upsert(_ context.Context, record *domain.GradeRecord) error {
	key := gradeKey{record.StudentID, record.SubjectID, record.AcademicYear, record.Semester}
	f.records[key] = *record
	return nil
}

func TestGradeSubmit(t *testing.T) {
	repo := newFakeGradeRepo()
	repo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	repo.assignments[assignmentKey(3, 7, 1, 2024)] = true
	uc := NewGradeUseCase(repo)

	sub := &domain.GradeSubmission{
		StudentID:      1,
		SubjectID:      7,
		AcademicYear:   2024,
		Semester:       "ganjil",
		TaskScore:      fp(80),
		MidtermScore:   fp(70),
		FinalExamScore: fp(90),
		Commentary:     "Good progress",
	}
	if err := uc.Submit(context.Background(), 10, sub); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	key := gradeKey{1, 7, 2024, domain.SemesterGanjil}
	record, ok := repo.records[key]
	if !ok {
		t.Fatalf("record not stored under canonical semester key, have %v", repo.records)
	}
	if math.Abs(record.FinalScore-81) > 1e-9 {
		t.Errorf("final score = %v, want 81", record.FinalScore)
	}
	if record.TeacherID != 3 {
		t.Errorf("teacher id = %d, want 3", record.TeacherID)
	}

	// Resubmission replaces the row instead of adding a second one.
	sub.FinalExamScore = fp(50)
	if err := uc.Submit(context.Background(), 10, sub); err != nil {
		t.Fatalf("resubmit unexpected error: %v", err)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected a single row after resubmission, got %d", len(repo.records))
	}
	if got := repo.records[key].FinalScore; math.Abs(got-65) > 1e-9 {
		t.Errorf("recomputed final score = %v, want 65", got)
	}
}

func TestGradeSubmitMissingComponents(t *testing.T) {
	repo := newFakeGradeRepo()
	repo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	repo.assignments[assignmentKey(3, 7, 1, 2024)] = true
	uc := NewGradeUseCase(repo)

	sub := &domain.GradeSubmission{
		StudentID:    1,
		SubjectID:    7,
		AcademicYear: 2024,
		Semester:     "Genap",
		MidtermScore: fp(100),
	}
	if err := uc.Submit(context.Background(), 10, sub); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	record := repo.records[gradeKey{1, 7, 2024, domain.SemesterGenap}]
	if math.Abs(record.FinalScore-30) > 1e-9 {
		t.Errorf("final score with only midterm = %v, want 30", record.FinalScore)
	}
}

func TestGradeSubmitScoresUnbounded(t *testing.T) {
	repo := newFakeGradeRepo()
	repo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	repo.assignments[assignmentKey(3, 7, 1, 2024)] = true
	uc := NewGradeUseCase(repo)

	// Component scores carry no range check, so values outside 0-100 are
	// stored and weighted as submitted.
	sub := &domain.GradeSubmission{
		StudentID:      1,
		SubjectID:      7,
		AcademicYear:   2024,
		Semester:       "Ganjil",
		TaskScore:      fp(150),
		MidtermScore:   fp(-10),
		FinalExamScore: fp(90),
	}
	if err := uc.Submit(context.Background(), 10, sub); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	record, ok := repo.records[gradeKey{1, 7, 2024, domain.SemesterGanjil}]
	if !ok {
		t.Fatal("out-of-range submission was not stored")
	}
	if math.Abs(record.FinalScore-78) > 1e-9 {
		t.Errorf("final score = %v, want 78", record.FinalScore)
	}
}

func TestGradeSubmitRejections(t *testing.T) {
	repo := newFakeGradeRepo()
	repo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	repo.assignments[assignmentKey(3, 7, 1, 2024)] = true
	uc := NewGradeUseCase(repo)

	base := domain.GradeSubmission{
		StudentID:    1,
		SubjectID:    7,
		AcademicYear: 2024,
		Semester:     "Ganjil",
	}

	t.Run("unknown semester", func(t *testing.T) {
		sub := base
		sub.Semester = "summer"
		if err := uc.Submit(context.Background(), 10, &sub); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation for unknown semester, got %v", err)
		}
	})

	t.Run("no teacher profile", func(t *testing.T) {
		sub := base
		if err := uc.Submit(context.Background(), 99, &sub); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown account, got %v", err)
		}
	})

	t.Run("no teaching assignment", func(t *testing.T) {
		sub := base
		sub.SubjectID = 8
		if err := uc.Submit(context.Background(), 10, &sub); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound without an assignment, got %v", err)
		}
	})

	if len(repo.records) != 0 {
		t.Errorf("rejected submissions must not persist, got %v", repo.records)
	}
}
