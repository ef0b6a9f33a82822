package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atvirokodosprendimai/deskkit/internal/adapters/export"
	"github.com/atvirokodosprendimai/deskkit/internal/application"
	"github.com/atvirokodosprendimai/deskkit/internal/domain"
	"github.com/atvirokodosprendimai/deskkit/internal/validate"
)

var errInputClosed = errors.New("input closed")

// menu is the interactive numbered loop. It owns every re-prompt; the
// validators it calls only report success or failure.
type menu struct {
	svc       *application.GradeService
	in        *bufio.Scanner
	out       io.Writer
	exportDir string
	now       func() time.Time
}

func newMenu(svc *application.GradeService, in io.Reader, out io.Writer, exportDir string, now func() time.Time) *menu {
	return &menu{svc: svc, in: bufio.NewScanner(in), out: out, exportDir: exportDir, now: now}
}

func (m *menu) run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "====== Grades ======")
		fmt.Fprintln(m.out, "1) Add grade")
		fmt.Fprintln(m.out, "2) Show all grades")
		fmt.Fprintln(m.out, "3) Show grades by subject")
		fmt.Fprintln(m.out, "4) Show overall average")
		fmt.Fprintln(m.out, "5) Export CSV")
		fmt.Fprintln(m.out, "6) Export JSON")
		fmt.Fprintln(m.out, "7) Export PDF")
		fmt.Fprintln(m.out, "8) Export Excel")
		fmt.Fprintln(m.out, "9) Exit")

		choice, err := m.prompt("Choice: ")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.addGrade(ctx)
		case "2":
			err = showAllGrades(ctx, m.out, m.svc)
		case "3":
			err = m.subjectGrades(ctx)
		case "4":
			err = showOverallAverage(ctx, m.out, m.svc)
		case "5":
			err = exportGrades(ctx, m.out, m.svc, export.FormatCSV, m.exportDir, "", m.now())
		case "6":
			err = exportGrades(ctx, m.out, m.svc, export.FormatJSON, m.exportDir, "", m.now())
		case "7":
			err = exportGrades(ctx, m.out, m.svc, export.FormatPDF, m.exportDir, "", m.now())
		case "8":
			err = exportGrades(ctx, m.out, m.svc, export.FormatXLSX, m.exportDir, "", m.now())
		case "9":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		fmt.Fprintln(m.out)
	}
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) addGrade(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Add grade ---")
	subject, err := m.selectSubject(ctx)
	if err != nil {
		return err
	}
	value, err := m.inputGrade()
	if err != nil {
		return err
	}
	date, err := m.inputDate()
	if err != nil {
		return err
	}
	return addGrade(ctx, m.out, m.svc, subject.ID, value, date)
}

func (m *menu) subjectGrades(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Grades by subject ---")
	subject, err := m.selectSubject(ctx)
	if err != nil {
		return err
	}
	return showSubjectGrades(ctx, m.out, m.svc, subject)
}

func (m *menu) selectSubject(ctx context.Context) (domain.Subject, error) {
	subjects, err := m.svc.Subjects(ctx)
	if err != nil {
		return domain.Subject{}, err
	}
	fmt.Fprintln(m.out, "Available subjects:")
	for _, s := range subjects {
		fmt.Fprintf(m.out, "%d) %s\n", s.ID, s.Name)
	}

	for {
		input, err := m.prompt("Subject id: ")
		if err != nil {
			return domain.Subject{}, err
		}
		id, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		for _, s := range subjects {
			if uint64(s.ID) == id {
				return s, nil
			}
		}
		fmt.Fprintln(m.out, "Unknown subject id, please try again.")
	}
}

func (m *menu) inputGrade() (float64, error) {
	for {
		input, err := m.prompt("Grade (e.g. 4, 4.5, 5): ")
		if err != nil {
			return 0, err
		}
		value, err := validate.Grade(input)
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(m.out, invalidGradeMessage)
	}
}

func (m *menu) inputDate() (string, error) {
	today := m.now().Format(domain.DateLayout)
	input, err := m.prompt(fmt.Sprintf("Date (YYYY-MM-DD) or empty for today (%s): ", today))
	if err != nil {
		return "", err
	}
	date, fellBack := validate.Date(input, m.now())
	if fellBack {
		fmt.Fprintln(m.out, invalidDateMessage)
	}
	return date, nil
}
