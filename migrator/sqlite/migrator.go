package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migrate applies the embedded timetable schema
func Migrate(db *sql.DB) error {
	if err := sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(sqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate timetable schema: %w", err)
	}
	return nil
}
