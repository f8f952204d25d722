// Package migrations applies the embedded SQL schema in lexical file order.
package migrations

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var files embed.FS

// advisoryLockKey serializes concurrent migrators across instances.
const advisoryLockKey = 7_310_220_001

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    varchar(255) PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// Migration is one embedded SQL file.
type Migration struct {
	Version string
	SQL     string
}

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	return load(files, "sql")
}

func load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, "read migrations dir")
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read migration %s", entry.Name())
		}

		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })

	return migrations, nil
}

// Apply runs every migration not yet recorded in schema_migrations, each in its own transaction.
func Apply(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	migrations, err := Load()
	if err != nil {
		return err
	}

	return apply(ctx, db, logger, migrations)
}

func apply(ctx context.Context, db *gorm.DB, logger *slog.Logger, migrations []Migration) error {
	if err := db.WithContext(ctx).Exec(createVersionTable).Error; err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}

	for _, m := range migrations {
		applied := false
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", advisoryLockKey).Error; err != nil {
				return errors.Wrap(err, "acquire migration lock")
			}

			var count int64
			if err := tx.Table("schema_migrations").Where("version = ?", m.Version).Count(&count).Error; err != nil {
				return errors.Wrap(err, "check migration version")
			}
			if count > 0 {
				return nil
			}

			if err := tx.Exec(m.SQL).Error; err != nil {
				return errors.Wrapf(err, "apply migration %s", m.Version)
			}
			if err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version).Error; err != nil {
				return errors.Wrapf(err, "record migration %s", m.Version)
			}
			applied = true

			return nil
		})
		if err != nil {
			return err
		}

		if applied && logger != nil {
			logger.InfoContext(ctx, "Migration applied", slog.String("version", m.Version))
		}
	}

	return nil
}
