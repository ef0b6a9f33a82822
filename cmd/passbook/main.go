package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	sqliteadapter "github.com/atvirokodosprendimai/deskkit/internal/adapters/db/sqlite"
	"github.com/atvirokodosprendimai/deskkit/internal/application"
	"github.com/atvirokodosprendimai/deskkit/internal/config"
	"github.com/atvirokodosprendimai/deskkit/internal/domain"
	"github.com/atvirokodosprendimai/deskkit/internal/logger"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	a := &app{cfg: cfg, out: os.Stdout}
	if err := a.command().Run(context.Background(), args); err != nil {
		log.Fatal().Err(err).Msg("passbook failed")
	}
}

type app struct {
	cfg config.Config
	out io.Writer
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:   "passbook",
		Usage:  "Remember which username and password hint belong to which service",
		Writer: a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db-path", Value: a.cfg.Passbook.DBPath, Usage: "SQLite database path (env DB_PATH)"},
		},
		Commands: []*cli.Command{
			a.addCommand(),
			a.listCommand(),
		},
	}
}

func (a *app) addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Store a new entry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "service", Aliases: []string{"s"}, Usage: "service name"},
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "username or email address"},
			&cli.StringFlag{Name: "hint", Usage: "password hint (optional)"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			err = svc.Save(ctx, c.String("service"), c.String("username"), c.String("hint"))
			var verr domain.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(a.out, validationMessage(verr))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Entry saved.")
			return nil
		},
	}
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored entries, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "only services containing this text"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := a.openService(ctx, c)
			if err != nil {
				return err
			}
			entries, err := svc.List(ctx, c.String("search"))
			if err != nil {
				return err
			}
			printEntries(a.out, entries)
			fmt.Fprintf(a.out, "\nEntries: %d | DB: %s\n", len(entries), c.String("db-path"))
			return nil
		},
	}
}

func (a *app) openService(ctx context.Context, c *cli.Command) (*application.EntryService, error) {
	svc := application.NewEntryService(sqliteadapter.NewEntryRepository(c.String("db-path")))
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func validationMessage(err domain.ValidationError) string {
	switch {
	case err.Field == "service":
		return "Service name is required."
	case errors.Is(err, domain.ErrInvalidEmail):
		return "The email address is invalid."
	case err.Field == "username":
		return "Username or email is required."
	default:
		return err.Error()
	}
}
