package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hikmah/domain"
)

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }

type fakeReportRepo struct {
	grades    map[int][]domain.SubjectGradeRow
	recaps    map[int]domain.AttendanceRecap
	notes     map[int][]domain.BehaviorNoteView
	promotion map[int]domain.PromotionStatus
	students  []domain.StudentSummary
}

func (f *fakeReportRepo) GradesForPeriod(_ context.Context, studentID, _ int, _ domain.Semester) ([]domain.SubjectGradeRow, error) {
	return f.grades[studentID], nil
}

func (f *fakeReportRepo) AttendanceTally(_ context.Context, studentID, _ int, _ domain.Semester) (domain.AttendanceRecap, error) {
	return f.recaps[studentID], nil
}

func (f *fakeReportRepo) BehaviorNotesForPeriod(_ context.Context, studentID, _ int, _ domain.Semester) ([]domain.BehaviorNoteView, error) {
	return f.notes[studentID], nil
}

func (f *fakeReportRepo) PromotionOutcome(_ context.Context, studentID, _ int) (domain.PromotionStatus, error) {
	if status, ok := f.promotion[studentID]; ok {
		return status, nil
	}
	return domain.PromotionUndetermined, nil
}

func (f *fakeReportRepo) StudentsInClass(_ context.Context, _, _ int) ([]domain.StudentSummary, error) {
	return f.students, nil
}

func TestStudentReportSingleGrade(t *testing.T) {
	repo := &fakeReportRepo{
		grades: map[int][]domain.SubjectGradeRow{
			1: {{SubjectName: "Fiqih", Category: sp("Diniyah"), FinalScore: fp(81), Commentary: sp("Solid work")}},
		},
		recaps:    map[int]domain.AttendanceRecap{1: {Sick: 2, Permit: 1, Unexcused: 3}},
		promotion: map[int]domain.PromotionStatus{1: domain.PromotionPromoted},
	}
	uc := NewReportUseCase(repo)

	report, err := uc.StudentReport(context.Background(), 1, 2024, domain.SemesterGanjil)
	if err != nil {
		t.Fatalf("StudentReport() unexpected error: %v", err)
	}

	if report.Summary.TotalScore != 81 {
		t.Errorf("total score = %v, want 81", report.Summary.TotalScore)
	}
	if report.Summary.Average != 81 {
		t.Errorf("average = %v, want 81", report.Summary.Average)
	}
	if report.Summary.OverallPredicate != "B" {
		t.Errorf("overall predicate = %q, want B", report.Summary.OverallPredicate)
	}
	if report.Summary.PromotionStatus != domain.PromotionPromoted {
		t.Errorf("promotion = %q, want promoted", report.Summary.PromotionStatus)
	}

	section, ok := report.GradesByCategory["Diniyah"]
	if !ok || len(section) != 1 {
		t.Fatalf("expected one grade under Diniyah, got %v", report.GradesByCategory)
	}
	if section[0].Predicate != "B" {
		t.Errorf("subject predicate = %q, want B", section[0].Predicate)
	}
	if section[0].Commentary != "Solid work" {
		t.Errorf("commentary = %q, want the submitted one", section[0].Commentary)
	}

	if got := report.NonAcademic.AttendanceBuckets; got != (domain.AttendanceRecap{Sick: 2, Permit: 1, Unexcused: 3}) {
		t.Errorf("attendance buckets = %+v", got)
	}
	if report.NonAcademic.BehaviorNotes == nil {
		t.Error("behavior notes must serialise as an empty list, not null")
	}
}

func TestStudentReportNoGrades(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{})

	_, err := uc.StudentReport(context.Background(), 7, 2024, domain.SemesterGenap)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a period without grades, got %v", err)
	}
}

func TestStudentReportDefaultsAndRounding(t *testing.T) {
	repo := &fakeReportRepo{
		grades: map[int][]domain.SubjectGradeRow{
			1: {
				{SubjectName: "Matematika", Category: nil, FinalScore: fp(80.126), Commentary: nil},
				{SubjectName: "Bahasa Arab", Category: sp(""), FinalScore: fp(80.121), Commentary: sp("")},
			},
		},
	}
	uc := NewReportUseCase(repo)

	report, err := uc.StudentReport(context.Background(), 1, 2024, domain.SemesterGanjil)
	if err != nil {
		t.Fatalf("StudentReport() unexpected error: %v", err)
	}

	section, ok := report.GradesByCategory[domain.DefaultCategory]
	if !ok || len(section) != 2 {
		t.Fatalf("uncategorised subjects must land under %q, got %v", domain.DefaultCategory, report.GradesByCategory)
	}
	for _, view := range section {
		if view.Commentary != domain.DefaultCommentary {
			t.Errorf("empty commentary must read %q, got %q", domain.DefaultCommentary, view.Commentary)
		}
	}

	if report.Summary.TotalScore != 160.25 {
		t.Errorf("total score = %v, want 160.25", report.Summary.TotalScore)
	}
	if report.Summary.Average != 80.12 {
		t.Errorf("average = %v, want 80.12", report.Summary.Average)
	}
	if report.Summary.OverallPredicate != "B" {
		t.Errorf("overall predicate = %q, want B", report.Summary.OverallPredicate)
	}
	if report.Summary.PromotionStatus != domain.PromotionUndetermined {
		t.Errorf("promotion without a placement must be undetermined, got %q", report.Summary.PromotionStatus)
	}
}

func TestClassReportIncludesGradelessMembers(t *testing.T) {
	repo := &fakeReportRepo{
		students: []domain.StudentSummary{
			{StudentID: 1, FullName: "Ahmad"},
			{StudentID: 2, FullName: "Budi"},
		},
		grades: map[int][]domain.SubjectGradeRow{
			1: {{SubjectName: "Fiqih", FinalScore: fp(92)}},
		},
		recaps:    map[int]domain.AttendanceRecap{2: {Unexcused: 4}},
		promotion: map[int]domain.PromotionStatus{2: domain.PromotionRetained},
	}
	uc := NewReportUseCase(repo)

	entries, err := uc.ClassReport(context.Background(), 5, 2024, domain.SemesterGanjil)
	if err != nil {
		t.Fatalf("ClassReport() unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Report.Summary.OverallPredicate != "A" {
		t.Errorf("graded member predicate = %q, want A", entries[0].Report.Summary.OverallPredicate)
	}

	degenerate := entries[1]
	if degenerate.StudentName != "Budi" {
		t.Fatalf("expected Budi second, got %q", degenerate.StudentName)
	}
	if degenerate.Report.Summary.Average != 0 || degenerate.Report.Summary.OverallPredicate != "-" {
		t.Errorf("gradeless member must have zero average and %q predicate, got %+v", "-", degenerate.Report.Summary)
	}
	if degenerate.Report.Summary.PromotionStatus != domain.PromotionRetained {
		t.Errorf("gradeless member still carries its promotion outcome, got %q", degenerate.Report.Summary.PromotionStatus)
	}
	if degenerate.Report.NonAcademic.AttendanceBuckets.Unexcused != 4 {
		t.Errorf("gradeless member still carries attendance, got %+v", degenerate.Report.NonAcademic.AttendanceBuckets)
	}
}

func TestClassReportEmptyClass(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{})

	entries, err := uc.ClassReport(context.Background(), 9, 2024, domain.SemesterGenap)
	if err != nil {
		t.Fatalf("ClassReport() unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("empty class must yield an empty list, got %v", entries)
	}
}

func TestStudentReportNotesNewestFirst(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.September, d, 0, 0, 0, 0, time.UTC)
	}
	repo := &fakeReportRepo{
		grades: map[int][]domain.SubjectGradeRow{
			1: {{SubjectName: "Fiqih", FinalScore: fp(75)}},
		},
		notes: map[int][]domain.BehaviorNoteView{
			1: {
				{Category: "Kedisiplinan", Description: "Terlambat", NoteDate: day(2)},
				{Category: "Akhlak", Description: "Membantu teman", NoteDate: day(20)},
				{Category: "Kedisiplinan", Description: "Lupa seragam", NoteDate: day(9)},
			},
		},
	}
	uc := NewReportUseCase(repo)

	report, err := uc.StudentReport(context.Background(), 1, 2024, domain.SemesterGanjil)
	if err != nil {
		t.Fatalf("StudentReport() unexpected error: %v", err)
	}

	notes := report.NonAcademic.BehaviorNotes
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	for i := 1; i < len(notes); i++ {
		if notes[i].NoteDate.After(notes[i-1].NoteDate) {
			t.Fatalf("notes not newest first: %v before %v", notes[i-1].NoteDate, notes[i].NoteDate)
		}
	}
	if notes[0].Description != "Membantu teman" {
		t.Errorf("newest note first, got %q", notes[0].Description)
	}
}
