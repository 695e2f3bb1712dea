package usecase

import (
	"context"
	"testing"
	"time"

	"hikmah/domain"
)

type fakeAttendanceRepo struct {
	entries []domain.AttendanceEntry
}

func (f *fakeAttendanceRepo) Record(_ context.Context, entry *domain.AttendanceEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

type fakeSender struct {
	alerts chan int
}

func (f *fakeSender) SendAbsenceAlert(_ context.Context, studentID int) error {
	f.alerts <- studentID
	return nil
}

func (f *fakeSender) SendCredentials(context.Context, int, *domain.VerifiedCredentials) error {
	return nil
}

func TestAttendanceRecord(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	gradeRepo := newFakeGradeRepo()
	gradeRepo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	sender := &fakeSender{alerts: make(chan int, 1)}
	uc := NewAttendanceUseCase(attRepo, gradeRepo, sender)

	req := &domain.AttendanceRequest{StudentID: 1, Date: "2024-08-15", Status: "Present"}
	if err := uc.Record(context.Background(), 10, req); err != nil {
		t.Fatalf("Record() unexpected error: %v", err)
	}

	if len(attRepo.entries) != 1 {
		t.Fatalf("expected one stored entry, got %d", len(attRepo.entries))
	}
	entry := attRepo.entries[0]
	if entry.Status != domain.AttendancePresent {
		t.Errorf("status = %q, want present", entry.Status)
	}
	if entry.TeacherID == nil || *entry.TeacherID != 3 {
		t.Errorf("teacher id = %v, want 3", entry.TeacherID)
	}
	if want := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC); !entry.Date.Equal(want) {
		t.Errorf("date = %v, want %v", entry.Date, want)
	}

	select {
	case id := <-sender.alerts:
		t.Errorf("present must not trigger an absence alert, got alert for %d", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAttendanceAlphaFiresAlert(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	gradeRepo := newFakeGradeRepo()
	gradeRepo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	sender := &fakeSender{alerts: make(chan int, 1)}
	uc := NewAttendanceUseCase(attRepo, gradeRepo, sender)

	req := &domain.AttendanceRequest{StudentID: 42, Date: "2024-08-15", Status: "alpha"}
	if err := uc.Record(context.Background(), 10, req); err != nil {
		t.Fatalf("Record() unexpected error: %v", err)
	}

	select {
	case id := <-sender.alerts:
		if id != 42 {
			t.Errorf("alert student id = %d, want 42", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected an absence alert for an alpha entry")
	}
}

func TestAttendanceRejectsBadInput(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	gradeRepo := newFakeGradeRepo()
	gradeRepo.teachers[10] = &domain.Teacher{TeacherID: 3, AccountID: 10}
	uc := NewAttendanceUseCase(attRepo, gradeRepo, nil)

	t.Run("unknown status", func(t *testing.T) {
		req := &domain.AttendanceRequest{StudentID: 1, Date: "2024-08-15", Status: "late"}
		if err := uc.Record(context.Background(), 10, req); err == nil {
			t.Error("expected error for unknown status")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		req := &domain.AttendanceRequest{StudentID: 1, Date: "15-08-2024", Status: "sick"}
		if err := uc.Record(context.Background(), 10, req); err == nil {
			t.Error("expected error for non ISO date")
		}
	})

	if len(attRepo.entries) != 0 {
		t.Errorf("rejected requests must not persist, got %d entries", len(attRepo.entries))
	}
}
