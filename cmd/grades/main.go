package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	sqliteadapter "github.com/atvirokodosprendimai/deskkit/internal/adapters/db/sqlite"
	"github.com/atvirokodosprendimai/deskkit/internal/adapters/export"
	"github.com/atvirokodosprendimai/deskkit/internal/application"
	"github.com/atvirokodosprendimai/deskkit/internal/config"
	"github.com/atvirokodosprendimai/deskkit/internal/domain"
	"github.com/atvirokodosprendimai/deskkit/internal/logger"
	"github.com/atvirokodosprendimai/deskkit/internal/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	a := &app{cfg: cfg, in: os.Stdin, out: os.Stdout, now: time.Now}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("grades failed")
	}
}

type app struct {
	cfg config.Config
	in  io.Reader
	out io.Writer
	now func() time.Time
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:   "grades",
		Usage:  "Record grades per subject, show averages and export them",
		Writer: a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db-path", Value: a.cfg.Grades.DBPath, Usage: "SQLite database path (env GRADES_DB_PATH)"},
			&cli.StringFlag{Name: "export-dir", Value: a.cfg.Grades.ExportDir, Usage: "directory for exports without --out"},
		},
		Commands: []*cli.Command{
			a.addCommand(),
			a.listCommand(),
			a.averageCommand(),
			a.subjectsCommand(),
			a.exportCommand(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			return newMenu(svc, a.in, a.out, c.String("export-dir"), a.now).run(ctx)
		},
	}
}

func (a *app) openService(ctx context.Context, c *cli.Command) (*application.GradeService, error) {
	svc := application.NewGradeService(sqliteadapter.NewGradeRepository(c.String("db-path")), application.GradeServiceConfig{
		Subjects:         a.cfg.Grades.Subjects,
		RejectDuplicates: a.cfg.Grades.RejectDuplicates,
	})
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *app) addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Record a grade",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "subject-id", Required: true, Usage: "subject id, see 'grades subjects'"},
			&cli.StringFlag{Name: "grade", Required: true, Usage: "1 to 6 in steps of .5"},
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD, defaults to today"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			value, err := validate.Grade(c.String("grade"))
			if err != nil {
				fmt.Fprintln(a.out, invalidGradeMessage)
				return nil
			}
			date, fellBack := validate.Date(c.String("date"), a.now())
			if fellBack {
				fmt.Fprintln(a.out, invalidDateMessage)
			}
			return addGrade(ctx, a.out, svc, uint(c.Uint("subject-id")), value, date)
		},
	}
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all grades, or the grades of one subject with its average",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "subject-id", Usage: "only this subject"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			if id := uint(c.Uint("subject-id")); id != 0 {
				subject, err := svc.Subject(ctx, id)
				if errors.Is(err, domain.ErrSubjectNotFound) {
					fmt.Fprintln(a.out, "Unknown subject id.")
					return nil
				}
				if err != nil {
					return err
				}
				return showSubjectGrades(ctx, a.out, svc, subject)
			}
			return showAllGrades(ctx, a.out, svc)
		},
	}
}

func (a *app) averageCommand() *cli.Command {
	return &cli.Command{
		Name:  "average",
		Usage: "Show the overall average, or the average of one subject",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "subject-id", Usage: "only this subject"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			id := uint(c.Uint("subject-id"))
			if id == 0 {
				return showOverallAverage(ctx, a.out, svc)
			}
			subject, err := svc.Subject(ctx, id)
			if errors.Is(err, domain.ErrSubjectNotFound) {
				fmt.Fprintln(a.out, "Unknown subject id.")
				return nil
			}
			if err != nil {
				return err
			}
			avg, ok, err := svc.SubjectAverage(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(a.out, "No grades recorded for '%s' yet.\n", subject.Name)
				return nil
			}
			fmt.Fprintf(a.out, "Average for %s: %.2f\n", subject.Name, avg)
			return nil
		},
	}
}

func (a *app) subjectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "subjects",
		Usage: "List the available subjects",
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			subjects, err := svc.Subjects(ctx)
			if err != nil {
				return err
			}
			printSubjects(a.out, subjects)
			return nil
		},
	}
}

func (a *app) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the full grade history",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "csv", Usage: "csv, json, pdf or xlsx"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, defaults to a timestamped name in --export-dir"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			format, err := export.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			return exportGrades(ctx, a.out, svc, format, c.String("export-dir"), c.String("out"), a.now())
		},
	}
}
