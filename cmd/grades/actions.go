package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atvirokodosprendimai/deskkit/internal/adapters/export"
	"github.com/atvirokodosprendimai/deskkit/internal/application"
	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

const (
	invalidGradeMessage = "Invalid grade. Allowed are values from 1 to 6 in steps of .5."
	invalidDateMessage  = "Invalid date format, using today's date."
)

func addGrade(ctx context.Context, out io.Writer, svc *application.GradeService, subjectID uint, value float64, date string) error {
	subject, err := svc.Subject(ctx, subjectID)
	if errors.Is(err, domain.ErrSubjectNotFound) {
		fmt.Fprintln(out, "Unknown subject id.")
		return nil
	}
	if err != nil {
		return err
	}

	err = svc.AddGrade(ctx, subjectID, value, date)
	if errors.Is(err, domain.ErrDuplicateGrade) {
		fmt.Fprintf(out, "Grade %s for '%s' on %s is already recorded, skipped.\n", formatGrade(value), subject.Name, date)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Grade %s for '%s' on %s saved.\n", formatGrade(value), subject.Name, date)
	return nil
}

func showAllGrades(ctx context.Context, out io.Writer, svc *application.GradeService) error {
	rows, err := svc.ListGrades(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No grades recorded yet.")
		return nil
	}
	printGradeRows(out, rows)
	return nil
}

func showSubjectGrades(ctx context.Context, out io.Writer, svc *application.GradeService, subject domain.Subject) error {
	grades, err := svc.ListSubjectGrades(ctx, subject.ID)
	if err != nil {
		return err
	}
	if len(grades) == 0 {
		fmt.Fprintf(out, "No grades recorded for '%s' yet.\n", subject.Name)
		return nil
	}
	fmt.Fprintf(out, "Grades for '%s':\n", subject.Name)
	for _, g := range grades {
		fmt.Fprintf(out, "- %s on %s\n", colorGrade(g.Value), g.Date)
	}
	avg, ok, err := svc.SubjectAverage(ctx, subject.ID)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(out, "Average for %s: %.2f\n", subject.Name, avg)
	}
	return nil
}

func showOverallAverage(ctx context.Context, out io.Writer, svc *application.GradeService) error {
	avg, ok, err := svc.OverallAverage(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No grades recorded yet.")
		return nil
	}
	fmt.Fprintf(out, "Overall average across all subjects: %.2f\n", avg)
	return nil
}

func exportGrades(ctx context.Context, out io.Writer, svc *application.GradeService, format export.Format, dir, path string, now time.Time) error {
	report, err := svc.Report(ctx, now)
	if err != nil {
		return err
	}
	written, err := export.WriteFile(dir, path, format, report)
	if errors.Is(err, export.ErrNothingToExport) {
		fmt.Fprintln(out, "Nothing to export.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d grades to %s\n", len(report.Rows), written)
	return nil
}
