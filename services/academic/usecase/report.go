package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"hikmah/domain"
)

type reportUC struct {
	reportRepo domain.ReportRepo
}

func NewReportUseCase(repo domain.ReportRepo) domain.ReportUseCase {
	return &reportUC{
		reportRepo: repo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// assembleReport builds the derived report document from the fetched pieces.
// Grade rows are grouped by subject category; rows without one fall under the
// default section. An empty grade set yields a zeroed summary with the "-"
// predicate while attendance, notes and promotion still carry real data.
func assembleReport(grades []domain.SubjectGradeRow, recap domain.AttendanceRecap, notes []domain.BehaviorNoteView, promotion domain.PromotionStatus) domain.ReportCard {
	byCategory := map[string][]domain.SubjectGradeView{}
	total := 0.0
	counted := 0

	for _, row := range grades {
		category := domain.DefaultCategory
		if row.Category != nil && *row.Category != "" {
			category = *row.Category
		}

		commentary := domain.DefaultCommentary
		if row.Commentary != nil && *row.Commentary != "" {
			commentary = *row.Commentary
		}

		var score *float64
		if row.FinalScore != nil {
			rounded := round2(*row.FinalScore)
			score = &rounded
			total += *row.FinalScore
		}
		counted++

		byCategory[category] = append(byCategory[category], domain.SubjectGradeView{
			Subject:    row.SubjectName,
			FinalScore: score,
			Predicate:  domain.Predicate(score),
			Commentary: commentary,
		})
	}

	summary := domain.ReportSummary{
		OverallPredicate: "-",
		PromotionStatus:  promotion,
	}
	if counted > 0 {
		average := total / float64(counted)
		summary.TotalScore = round2(total)
		summary.Average = round2(average)
		summary.OverallPredicate = domain.Predicate(&average)
	}

	if notes == nil {
		notes = []domain.BehaviorNoteView{}
	}
	// Newest note first.
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].NoteDate.After(notes[j].NoteDate)
	})

	return domain.ReportCard{
		Summary:          summary,
		GradesByCategory: byCategory,
		NonAcademic: domain.NonAcademic{
			AttendanceBuckets: recap,
			BehaviorNotes:     notes,
		},
	}
}

func (ruc *reportUC) fetchPieces(ctx context.Context, studentID, academicYear int, semester domain.Semester) ([]domain.SubjectGradeRow, domain.AttendanceRecap, []domain.BehaviorNoteView, domain.PromotionStatus, error) {
	grades, err := ruc.reportRepo.GradesForPeriod(ctx, studentID, academicYear, semester)
	if err != nil {
		return nil, domain.AttendanceRecap{}, nil, "", err
	}

	recap, err := ruc.reportRepo.AttendanceTally(ctx, studentID, academicYear, semester)
	if err != nil {
		return nil, domain.AttendanceRecap{}, nil, "", err
	}

	notes, err := ruc.reportRepo.BehaviorNotesForPeriod(ctx, studentID, academicYear, semester)
	if err != nil {
		return nil, domain.AttendanceRecap{}, nil, "", err
	}

	promotion, err := ruc.reportRepo.PromotionOutcome(ctx, studentID, academicYear)
	if err != nil {
		return nil, domain.AttendanceRecap{}, nil, "", err
	}

	return grades, recap, notes, promotion, nil
}

// StudentReport assembles the report card for one santri and period. A santri
// with no grade rows for the period has no report.
func (ruc *reportUC) StudentReport(ctx context.Context, studentID, academicYear int, semester domain.Semester) (*domain.ReportCard, error) {
	grades, recap, notes, promotion, err := ruc.fetchPieces(ctx, studentID, academicYear, semester)
	if err != nil {
		return nil, err
	}
	if len(grades) == 0 {
		return nil, fmt.Errorf("no grades recorded for this period: %w", domain.ErrNotFound)
	}

	report := assembleReport(grades, recap, notes, promotion)
	return &report, nil
}

// ClassReport assembles a report per placed santri. Unlike the single-student
// report, members without grade rows still get an entry so the homeroom
// teacher sees the whole class; a class with no placements yields an empty
// list.
func (ruc *reportUC) ClassReport(ctx context.Context, classID, academicYear int, semester domain.Semester) ([]domain.ClassReportEntry, error) {
	students, err := ruc.reportRepo.StudentsInClass(ctx, classID, academicYear)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ClassReportEntry, 0, len(students))
	for _, student := range students {
		grades, recap, notes, promotion, err := ruc.fetchPieces(ctx, student.StudentID, academicYear, semester)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.ClassReportEntry{
			StudentID:   student.StudentID,
			StudentName: student.FullName,
			Report:      assembleReport(grades, recap, notes, promotion),
		})
	}
	return entries, nil
}
