package sqlite

import (
	"context"
	"embed"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:embed migrations/entries/*.sql migrations/grades/*.sql
var migrationsFS embed.FS

// Schema names the embedded migration set of one database.
type Schema string

const (
	SchemaEntries Schema = "migrations/entries"
	SchemaGrades  Schema = "migrations/grades"
)

func RunMigrations(ctx context.Context, db *gorm.DB, schema Schema) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.UpContext(ctx, sqlDB, string(schema)); err != nil {
		return err
	}

	log.Debug().Str("schema", string(schema)).Msg("migrations applied")
	return nil
}
